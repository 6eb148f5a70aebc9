package store

import (
	"time"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// ReserveTable books a table for a user at an hourly slot.  The
// checks run fail-fast in a fixed order so that the reported
// failure is deterministic:
//
//  1. the user exists                       (ErrUserNotFound)
//  2. the user is not a manager             (ErrManagerReservationNotAllowed)
//  3. the restaurant exists                 (ErrRestaurantNotFound)
//  4. the table exists on that restaurant   (ErrTableNotFound)
//  5. the datetime is on a whole hour       (ErrInvalidDateTime)
//     and inside the working-hours window   (ErrReservationNotInOpenTimes)
//  6. no active reservation holds the slot  (ErrTableAlreadyReserved)
//
// On success the reservation takes the next number from the user's
// private counter, is appended to the user's list and indexed for
// the double-booking check.  The whole operation runs under the
// write lock: no partial state is ever visible, and two concurrent
// calls can never both pass check 6 for the same slot.
//
// The engine never consults the current time, so past-dated slots
// are reservable; datetimes are normalized to UTC.
func (s *Store) ReserveTable(username, restaurantName string, tableNumber int, at time.Time) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ue, ok := s.users[username]
	if !ok {
		return model.Reservation{}, ErrUserNotFound
	}
	if ue.user.Role == model.RoleManager {
		return model.Reservation{}, ErrManagerReservationNotAllowed
	}
	re, ok := s.restaurants[restaurantName]
	if !ok {
		return model.Reservation{}, ErrRestaurantNotFound
	}
	if !re.hasTable(tableNumber) {
		return model.Reservation{}, ErrTableNotFound
	}

	at = slotTime(at)
	if at.Minute() != 0 || at.Second() != 0 || at.Nanosecond() != 0 {
		return model.Reservation{}, ErrInvalidDateTime
	}
	tod := model.TimeOfDay{Hour: at.Hour()}
	if !re.restaurant.WorkingHours.Contains(tod) {
		return model.Reservation{}, ErrReservationNotInOpenTimes
	}

	key := slotKey{table: tableNumber, at: at.Unix()}
	if re.booked[key] {
		return model.Reservation{}, ErrTableAlreadyReserved
	}

	res := model.Reservation{
		Number:         ue.counter,
		Username:       username,
		RestaurantName: restaurantName,
		TableNumber:    tableNumber,
		Datetime:       at,
	}
	ue.counter++
	ue.reservations = append(ue.reservations, res)
	re.booked[key] = true
	return res, nil
}

// CancelReservation cancels one of the user's own reservations by
// its per-user number.  The lookup scans only that user's list, so
// a number collision with another user's reservation is impossible.
// Cancelling is one-way and not idempotent: a second attempt fails
// with ErrAlreadyCancelled instead of silently succeeding.  On
// success the cancelled reservation is returned.
func (s *Store) CancelReservation(username string, reservationNumber int) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ue, ok := s.users[username]
	if !ok {
		return model.Reservation{}, ErrUserNotFound
	}
	for i := range ue.reservations {
		r := &ue.reservations[i]
		if r.Number != reservationNumber {
			continue
		}
		if r.Cancelled {
			return model.Reservation{}, ErrAlreadyCancelled
		}
		r.Cancelled = true
		if re, ok := s.restaurants[r.RestaurantName]; ok {
			delete(re.booked, slotKey{table: r.TableNumber, at: r.Datetime.Unix()})
		}
		return *r, nil
	}
	return model.Reservation{}, ErrReservationNotFound
}

// ActiveReservations returns the user's non-cancelled reservations
// in creation order; cancelled ones are filtered out of listings
// but keep their numbers reserved forever.
func (s *Store) ActiveReservations(username string) ([]model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ue, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := make([]model.Reservation, 0, len(ue.reservations))
	for _, r := range ue.reservations {
		if !r.Cancelled {
			out = append(out, r)
		}
	}
	return out, nil
}

// DayAvailability lists the free hourly slots of one date.  A slot
// is free when at least one of the restaurant's tables has no
// active reservation at it; the report is slot-level, not
// table-level.
type DayAvailability struct {
	Date  time.Time
	Times []model.TimeOfDay
}

// AvailableSlots enumerates, for each date from from to to
// inclusive, the hourly slots inside the restaurant's working
// hours at which some table is still free.  Dates are normalized
// to UTC midnight.  A restaurant without tables has no free slots.
// The computation runs under the read lock and therefore sees a
// consistent snapshot relative to in-flight reservations.
func (s *Store) AvailableSlots(restaurantName string, from, to time.Time) ([]DayAvailability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	re, ok := s.restaurants[restaurantName]
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	hours := re.restaurant.WorkingHours
	first := truncateToDay(from)
	last := truncateToDay(to)

	out := make([]DayAvailability, 0)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		avail := DayAvailability{Date: day, Times: make([]model.TimeOfDay, 0)}
		for h := hours.Start.Hour; h < hours.End.Hour; h++ {
			slot := day.Add(time.Duration(h) * time.Hour)
			for _, t := range re.restaurant.Tables {
				if !re.booked[slotKey{table: t.TableNumber, at: slot.Unix()}] {
					avail.Times = append(avail.Times, model.TimeOfDay{Hour: h})
					break
				}
			}
		}
		out = append(out, avail)
	}
	return out, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
