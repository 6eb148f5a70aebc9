package model

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, parsed from the
// "HH:MM" wire format.  Working hours and reservation slots are
// expressed with it.  The reservation rules only ever accept values
// on a whole hour, but the minute is kept so that the registries
// can reject misaligned input as a domain rule rather than a
// parsing accident.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseTimeOfDay parses an "HH:MM" string such as "09:00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns the time as minutes since midnight, used for
// ordering comparisons.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// String formats the time back into the "HH:MM" wire format.
func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// WorkingHours is the daily window during which a restaurant
// accepts reservations.  Start and End must both lie on a whole
// hour and Start must precede End; overnight windows (End <= Start)
// are rejected by the restaurant registry.  The End bound is
// exclusive: the last reservable slot is one hour before End.
//
// Fields:
//  Start – opening time.
//  End   – closing time (exclusive).
type WorkingHours struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Contains reports whether t falls inside the [Start, End) window.
func (w WorkingHours) Contains(t TimeOfDay) bool {
	m := t.Minutes()
	return m >= w.Start.Minutes() && m < w.End.Minutes()
}

// Table is a single table inside a restaurant.  Table numbers are
// unique within their restaurant only, not globally.
//
// Fields:
//  TableNumber – number identifying the table inside its restaurant.
//  SeatsCount  – number of seats at the table (always >= 1).
type Table struct {
	TableNumber int `json:"tableNumber"`
	SeatsCount  int `json:"seatsCount"`
}

// Restaurant is a venue accepting table reservations.  Names are
// globally unique.  Every restaurant references the username of a
// registered manager; that reference is validated when the
// restaurant or a table is created.  Restaurants and tables are
// never deleted.
//
// Fields:
//  Name            – globally unique restaurant name.
//  ManagerUsername – username of the managing user (role manager).
//  Type            – cuisine or category used by type search.
//  Description     – free-form description.
//  WorkingHours    – daily reservation window.
//  Address         – venue address, street always present.
//  Tables          – tables owned by the restaurant.
type Restaurant struct {
	Name            string       `json:"name"`
	ManagerUsername string       `json:"managerUsername"`
	Type            string       `json:"type"`
	Description     string       `json:"description"`
	WorkingHours    WorkingHours `json:"workingHours"`
	Address         Address      `json:"address"`
	Tables          []Table      `json:"tables"`
}
