package domain

import "time"

// AvailabilityRule is an admin override narrowing or widening slot availability
// for a specific date. At most one rule exists per date: setting a new rule
// for a date replaces the previous one.
type AvailabilityRule struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`      // YYYY-MM-DD
	TimeSlots []string `json:"timeSlots"` // HH:MM strings covered by the rule
	IsBlocked bool     `json:"isBlocked"` // true = remove availability, false = explicitly grant
	Reason    *string  `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Covers returns true if the rule covers the given time of day
func (r *AvailabilityRule) Covers(timeOfDay string) bool {
	for _, t := range r.TimeSlots {
		if t == timeOfDay {
			return true
		}
	}
	return false
}

// Blocks returns true if the rule removes availability for the given time of day
func (r *AvailabilityRule) Blocks(timeOfDay string) bool {
	return r.IsBlocked && r.Covers(timeOfDay)
}

// Clone returns a copy of the rule with its own time slot slice
func (r *AvailabilityRule) Clone() *AvailabilityRule {
	if r == nil {
		return nil
	}
	clone := *r
	clone.TimeSlots = append([]string(nil), r.TimeSlots...)
	return &clone
}
