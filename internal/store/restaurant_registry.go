package store

import (
	"sort"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// AddRestaurant creates a restaurant.  Checks run in order: the
// name must be unused (ErrDuplicateName), the manager username
// must resolve to a registered user with the manager role
// (ErrManagerNotFound), and the working hours must sit on whole
// hours with the start strictly before the end
// (ErrInvalidWorkingHours; overnight windows are rejected).  A new
// restaurant starts with no tables.
func (s *Store) AddRestaurant(name, managerUsername, rtype string, hours model.WorkingHours, description string, addr model.Address) (model.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.restaurants[name]; ok {
		return model.Restaurant{}, ErrDuplicateName
	}
	mgr, ok := s.users[managerUsername]
	if !ok || mgr.user.Role != model.RoleManager {
		return model.Restaurant{}, ErrManagerNotFound
	}
	if hours.Start.Minute != 0 || hours.End.Minute != 0 || hours.Start.Minutes() >= hours.End.Minutes() {
		return model.Restaurant{}, ErrInvalidWorkingHours
	}

	r := model.Restaurant{
		Name:            name,
		ManagerUsername: managerUsername,
		Type:            rtype,
		Description:     description,
		WorkingHours:    hours,
		Address:         addr,
	}
	s.restaurants[name] = &restaurantEntry{
		restaurant: r,
		booked:     make(map[slotKey]bool),
	}
	return r, nil
}

// AddTable adds a table to an existing restaurant.  Only the
// restaurant's registered manager may do so: a different manager
// fails with ErrManagerMismatch because the check gates a state
// mutation.  The table number must be unused within the restaurant
// and the seat count must be at least one.
func (s *Store) AddTable(tableNumber int, restaurantName, managerUsername string, seatsCount int) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.restaurants[restaurantName]
	if !ok {
		return model.Table{}, ErrRestaurantNotFound
	}
	if e.restaurant.ManagerUsername != managerUsername {
		return model.Table{}, ErrManagerMismatch
	}
	if e.hasTable(tableNumber) {
		return model.Table{}, ErrDuplicateTableNumber
	}
	if seatsCount < 1 {
		return model.Table{}, ErrInvalidSeatCount
	}

	t := model.Table{TableNumber: tableNumber, SeatsCount: seatsCount}
	e.restaurant.Tables = append(e.restaurant.Tables, t)
	return t, nil
}

// FindRestaurantByName returns the restaurant with the given name
// or ErrRestaurantNotFound.
func (s *Store) FindRestaurantByName(name string) (model.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.restaurants[name]
	if !ok {
		return model.Restaurant{}, ErrRestaurantNotFound
	}
	return e.snapshot(), nil
}

// FindRestaurantsByType returns all restaurants of the given type,
// ordered by name.  An empty result is not a failure; deciding
// that "no results" matters is left to the caller.
func (s *Store) FindRestaurantsByType(rtype string) []model.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Restaurant, 0)
	for _, e := range s.restaurants {
		if e.restaurant.Type == rtype {
			out = append(out, e.snapshot())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
