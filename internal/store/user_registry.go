package store

import "github.com/iliyamo/restaurant-table-reservation/internal/model"

// AddUser registers a new account.  Username and email must each
// be unused; either collision fails with ErrDuplicateIdentity
// without touching state.  The role and the address are assumed to
// be pre-validated by the caller (format checks are a handler
// concern), and the password must already be hashed.  The check
// and the insert run under one lock acquisition, so registration
// is atomic.
func (s *Store) AddUser(username, passwordHash, email string, role model.Role, addr model.Address) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return model.User{}, ErrDuplicateIdentity
	}
	if _, ok := s.emails[email]; ok {
		return model.User{}, ErrDuplicateIdentity
	}

	u := model.User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		Address:      addr,
		Role:         role,
	}
	s.users[username] = &userEntry{user: u, counter: 1}
	s.emails[email] = username
	return u, nil
}

// FindByUsername looks up a user by username.  The boolean result
// reports presence; an absent user is not an error at this layer.
func (s *Store) FindByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.users[username]
	if !ok {
		return model.User{}, false
	}
	return e.user, true
}

// FindManager looks up a user by username and succeeds only when
// that user holds the manager role.
func (s *Store) FindManager(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.users[username]
	if !ok || e.user.Role != model.RoleManager {
		return model.User{}, false
	}
	return e.user, true
}
