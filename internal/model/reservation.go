package model

import "time"

// DateTimeLayout is the wire format for reservation datetimes.
const DateTimeLayout = "2006-01-02 15:04"

// DateLayout is the wire format for plain dates in availability
// queries.
const DateLayout = "2006-01-02"

// Reservation records one table booked at one hourly slot.  A
// reservation belongs to exactly one user and is numbered from
// that user's private counter: numbers start at 1, grow by one per
// reservation and are never reused, even after cancellation.  The
// restaurant and table are referenced by name and number rather
// than embedded, since neither is ever deleted.
//
// The only lifecycle transition is Cancelled flipping false to
// true.  Past-dated reservations that were never cancelled stay
// active indefinitely; there is no expired state.
//
// Fields:
//  Number         – per-user reservation number, assigned at creation.
//  Username       – owning user.
//  RestaurantName – restaurant the table belongs to.
//  TableNumber    – table within the restaurant.
//  Datetime       – reserved slot, always on a whole hour, UTC.
//  Cancelled      – whether the reservation has been cancelled.
type Reservation struct {
	Number         int       `json:"reservationNumber"`
	Username       string    `json:"username"`
	RestaurantName string    `json:"restaurantName"`
	TableNumber    int       `json:"tableNumber"`
	Datetime       time.Time `json:"datetime"`
	Cancelled      bool      `json:"cancelled"`
}
