package domain

import "time"

// StoreSnapshot is the persisted state document. Bookings and availability
// rules are mirrored to durable storage and restored at startup; slots are
// never persisted, they are regenerated from the clock.
type StoreSnapshot struct {
	Bookings          []*Booking          `json:"bookings"`
	AvailabilityRules []*AvailabilityRule `json:"availabilityRules"`
	LastUpdated       time.Time           `json:"lastUpdated"`
}
