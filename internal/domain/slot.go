package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// TimeSlot represents a fixed 30-minute calendar interval eligible for booking.
// Slots are generated deterministically from the clock and are never stored:
// identity is the composite of date and start time.
type TimeSlot struct {
	ID        string           `json:"id"`   // "{date}-{time}", e.g. "2025-10-15-10:30"
	Date      string           `json:"date"` // YYYY-MM-DD
	StartTime types.TimeString `json:"startTime"`

	// Available is a derived flag, recomputed per query. At generation time
	// it only carries the static past-time mask for today's elapsed slots.
	Available bool `json:"available"`
}

// SlotID builds the canonical slot identifier from a date and a start time
func SlotID(date string, startTime types.TimeString) string {
	return fmt.Sprintf("%s-%s", date, startTime)
}
