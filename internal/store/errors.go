// Package store holds the authoritative in-memory state of the
// reservation system: the user registry, the restaurant registry
// and the reservation engine.  Every expected failure is a
// sentinel error defined here so that handlers can translate each
// outcome into a distinct HTTP response.  Failures are
// deterministic functions of the request and the current state;
// none of them is fatal to the process.
package store

import "errors"

// ErrUserNotFound is returned when an operation names a username
// that is not registered.  Handlers translate this into 404.
var ErrUserNotFound = errors.New("user not found")

// ErrManagerReservationNotAllowed is returned when a manager
// attempts to reserve a table, including at their own restaurant.
// Handlers translate this into 403.
var ErrManagerReservationNotAllowed = errors.New("manager cannot reserve a table")

// ErrRestaurantNotFound is returned when no restaurant with the
// given name exists.  Handlers translate this into 404.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrTableNotFound is returned when the restaurant exists but has
// no table with the given number.  Handlers translate this into 404.
var ErrTableNotFound = errors.New("table not found")

// ErrInvalidDateTime is returned when a reservation datetime does
// not lie exactly on an hour boundary.  Handlers translate this
// into 422.
var ErrInvalidDateTime = errors.New("reservation time must be on the hour")

// ErrReservationNotInOpenTimes is returned when a reservation
// datetime lies outside the restaurant's working hours.  Handlers
// translate this into 422.
var ErrReservationNotInOpenTimes = errors.New("reservation time is outside working hours")

// ErrTableAlreadyReserved is returned when the requested table
// already has an active reservation at the requested datetime.
// Handlers translate this into 409.
var ErrTableAlreadyReserved = errors.New("table already reserved at this time")

// ErrReservationNotFound is returned on cancellation when the user
// has no reservation with the given number.  Handlers translate
// this into 404.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrAlreadyCancelled is returned when a reservation is cancelled
// a second time.  A repeated cancel is a distinct failure rather
// than a no-op so that double-cancel attempts remain visible to
// callers.  Handlers translate this into 409.
var ErrAlreadyCancelled = errors.New("reservation already cancelled")

// ErrDuplicateIdentity is returned by user registration when the
// username or the email is already taken.  Handlers translate this
// into 409.
var ErrDuplicateIdentity = errors.New("username or email already taken")

// ErrDuplicateName is returned when a restaurant with the given
// name already exists.  Handlers translate this into 409.
var ErrDuplicateName = errors.New("restaurant name already taken")

// ErrManagerNotFound is returned when a restaurant is created for
// a username that does not resolve to a registered manager.
// Handlers translate this into 404.
var ErrManagerNotFound = errors.New("manager not found")

// ErrInvalidWorkingHours is returned when working hours are not on
// whole hours or the start does not precede the end.  Overnight
// windows are rejected under the same error.  Handlers translate
// this into 422.
var ErrInvalidWorkingHours = errors.New("invalid working hours")

// ErrManagerMismatch is returned when a table is added by a
// manager other than the restaurant's registered manager.
// Handlers translate this into 403.
var ErrManagerMismatch = errors.New("restaurant belongs to another manager")

// ErrDuplicateTableNumber is returned when the restaurant already
// has a table with the given number.  Handlers translate this into
// 409.
var ErrDuplicateTableNumber = errors.New("table number already taken")

// ErrInvalidSeatCount is returned when a table is added with fewer
// than one seat.  Handlers translate this into 422.
var ErrInvalidSeatCount = errors.New("invalid seat count")
