package model

// Address is an immutable postal location attached to users and
// restaurants.  Addresses are plain values: they are copied freely
// and never mutated after construction.  Street is optional for
// user addresses but always present on restaurant addresses; the
// handler layer enforces that distinction before the value reaches
// the registries.
//
// Fields:
//  Country – country name.
//  City    – city name.
//  Street  – street line (empty when a user omits it).
type Address struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street,omitempty"`
}
