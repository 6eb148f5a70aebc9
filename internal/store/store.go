package store

import (
	"sync"
	"time"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// userEntry is the store-internal record for one user.  The
// reservation counter and the reservation list live here rather
// than on model.User so that they can only change under the store
// lock.  counter holds the next number to assign and starts at 1.
type userEntry struct {
	user         model.User
	counter      int
	reservations []model.Reservation
}

// restaurantEntry is the store-internal record for one restaurant.
// booked indexes the active reservations by (table, slot) so that
// the double-booking check and availability enumeration do not
// scan every user's reservation list.
type restaurantEntry struct {
	restaurant model.Restaurant
	booked     map[slotKey]bool
}

// slotKey identifies one reservable opportunity: a table at an
// hourly slot.  The slot time is the Unix timestamp of the UTC
// datetime, which is exact because slots always sit on whole hours.
type slotKey struct {
	table int
	at    int64
}

func (e *restaurantEntry) hasTable(number int) bool {
	for _, t := range e.restaurant.Tables {
		if t.TableNumber == number {
			return true
		}
	}
	return false
}

// Store is the single authoritative state of the system.  One
// instance is constructed at process start and handed to every
// collaborator that needs it; there is no ambient global.
//
// All mutations take the write lock, so at most one reservation
// can succeed per (restaurant, table, datetime) even under
// concurrent callers.  Read-only queries take the read lock and
// therefore always observe a consistent snapshot.  Every method
// returns copies of the stored values, never interior pointers.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*userEntry       // keyed by username
	emails      map[string]string           // email -> username
	restaurants map[string]*restaurantEntry // keyed by restaurant name
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:       make(map[string]*userEntry),
		emails:      make(map[string]string),
		restaurants: make(map[string]*restaurantEntry),
	}
}

// snapshot deep-copies a restaurant so callers cannot reach the
// stored Tables slice.  Must be called with the lock held.
func (e *restaurantEntry) snapshot() model.Restaurant {
	r := e.restaurant
	r.Tables = append([]model.Table(nil), e.restaurant.Tables...)
	return r
}

// slotTime normalizes a reservation datetime to UTC.  Slots are
// compared by their Unix timestamp, so the caller's zone does not
// matter as long as the instant is the same.
func slotTime(at time.Time) time.Time {
	return at.UTC()
}
