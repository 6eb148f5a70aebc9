package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// reservationFixture builds a store with clients alice and bob,
// manager mgr1, and restaurant "Pasta Place" (hours 09:00-17:00)
// owning table 1 with four seats.
func reservationFixture(t *testing.T) *Store {
	t.Helper()
	s := New()
	for _, u := range []struct {
		name, email string
		role        model.Role
	}{
		{"alice", "alice@mail.com", model.RoleClient},
		{"bob", "bob@mail.com", model.RoleClient},
		{"mgr1", "mgr1@mail.com", model.RoleManager},
	} {
		_, err := s.AddUser(u.name, "hash", u.email, u.role, testAddr())
		require.NoError(t, err)
	}
	_, err := s.AddRestaurant("Pasta Place", "mgr1", "italian", hours(9, 17), "", testAddr())
	require.NoError(t, err)
	_, err = s.AddTable(1, "Pasta Place", "mgr1", 4)
	require.NoError(t, err)
	return s
}

func at(day string, hour int) time.Time {
	d, err := time.Parse(model.DateLayout, day)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestReserveCancelReserveScenario(t *testing.T) {
	s := reservationFixture(t)
	slot := at("2024-01-10", 10)

	res, err := s.ReserveTable("alice", "Pasta Place", 1, slot)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Number)
	assert.Equal(t, slot.UTC(), res.Datetime)

	// the same slot is taken for everyone else
	_, err = s.ReserveTable("bob", "Pasta Place", 1, slot)
	assert.ErrorIs(t, err, ErrTableAlreadyReserved)

	_, err = s.CancelReservation("alice", 1)
	require.NoError(t, err)

	// cancelling freed the slot; bob's own counter starts at 1
	res, err = s.ReserveTable("bob", "Pasta Place", 1, slot)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Number)
}

func TestReserveValidationOrder(t *testing.T) {
	s := reservationFixture(t)
	slot := at("2024-01-10", 10)

	// unknown user wins over every later check
	_, err := s.ReserveTable("nobody", "Nowhere", 9, slot.Add(30*time.Minute))
	assert.ErrorIs(t, err, ErrUserNotFound)

	// manager check precedes restaurant lookup
	_, err = s.ReserveTable("mgr1", "Nowhere", 9, slot)
	assert.ErrorIs(t, err, ErrManagerReservationNotAllowed)

	// restaurant before table
	_, err = s.ReserveTable("alice", "Nowhere", 9, slot)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	// table before time rules
	_, err = s.ReserveTable("alice", "Pasta Place", 9, slot.Add(30*time.Minute))
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestReserveSlotAlignment(t *testing.T) {
	s := reservationFixture(t)

	_, err := s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 10).Add(30*time.Minute))
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	_, err = s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 10).Add(15*time.Second))
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestReserveWorkingHoursContainment(t *testing.T) {
	s := reservationFixture(t)

	// before opening
	_, err := s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 8))
	assert.ErrorIs(t, err, ErrReservationNotInOpenTimes)

	// the end bound is exclusive
	_, err = s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 17))
	assert.ErrorIs(t, err, ErrReservationNotInOpenTimes)

	// opening slot and last slot are both fine
	_, err = s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 9))
	assert.NoError(t, err)
	_, err = s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 16))
	assert.NoError(t, err)
}

func TestManagerCannotReserve(t *testing.T) {
	s := reservationFixture(t)

	_, err := s.ReserveTable("mgr1", "Pasta Place", 1, at("2024-01-10", 10))
	assert.ErrorIs(t, err, ErrManagerReservationNotAllowed)
}

func TestReservationNumberingMonotonic(t *testing.T) {
	s := reservationFixture(t)

	r1, err := s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 9))
	require.NoError(t, err)
	r2, err := s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 10))
	require.NoError(t, err)
	assert.Equal(t, 1, r1.Number)
	assert.Equal(t, 2, r2.Number)

	// a cancelled number is never reused
	_, err = s.CancelReservation("alice", 2)
	require.NoError(t, err)
	r3, err := s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 11))
	require.NoError(t, err)
	assert.Equal(t, 3, r3.Number)
}

func TestCancelReservation(t *testing.T) {
	s := reservationFixture(t)
	_, err := s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 10))
	require.NoError(t, err)

	_, err = s.CancelReservation("nobody", 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.CancelReservation("alice", 2)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// bob cannot cancel alice's reservation through a number collision
	_, err = s.CancelReservation("bob", 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	cancelled, err := s.CancelReservation("alice", 1)
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)
	assert.Equal(t, "Pasta Place", cancelled.RestaurantName)

	_, err = s.CancelReservation("alice", 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestActiveReservations(t *testing.T) {
	s := reservationFixture(t)
	_, err := s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 9))
	require.NoError(t, err)
	_, err = s.ReserveTable("alice", "Pasta Place", 1, at("2024-01-10", 10))
	require.NoError(t, err)
	_, err = s.CancelReservation("alice", 1)
	require.NoError(t, err)

	active, err := s.ActiveReservations("alice")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 2, active[0].Number)

	_, err = s.ActiveReservations("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// TestConcurrentReserveSingleWinner hammers one slot from many
// goroutines and asserts that exactly one reservation succeeds.
func TestConcurrentReserveSingleWinner(t *testing.T) {
	s := reservationFixture(t)
	slot := at("2024-01-10", 12)

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		user := "alice"
		if i%2 == 1 {
			user = "bob"
		}
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			_, err := s.ReserveTable(u, "Pasta Place", 1, slot)
			results <- err
		}(user)
	}
	wg.Wait()
	close(results)

	won := 0
	for err := range results {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrTableAlreadyReserved)
		}
	}
	assert.Equal(t, 1, won)
}
