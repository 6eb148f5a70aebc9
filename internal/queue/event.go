// Package queue defines message payloads exchanged over the
// message broker and the background consumer that processes them.
package queue

// Event kinds carried by ReservationEvent.
const (
	KindConfirmed = "confirmed"
	KindCancelled = "cancelled"
)

// ReservationEvent is published whenever a reservation is
// confirmed or cancelled.  It carries enough information for
// downstream consumers to log or notify without querying the
// service.  Datetime and OccurredAt use the "2006-01-02 15:04"
// and RFC 3339 formats respectively.
type ReservationEvent struct {
	Kind              string `json:"kind"`
	Username          string `json:"username"`
	ReservationNumber int    `json:"reservation_number"`
	RestaurantName    string `json:"restaurant_name"`
	TableNumber       int    `json:"table_number"`
	Datetime          string `json:"datetime"`
	OccurredAt        string `json:"occurred_at"`
}
