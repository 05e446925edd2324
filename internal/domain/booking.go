package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusDenied   BookingStatus = "denied"
)

// Booking represents a customer's claim on a time slot, subject to admin approval.
// Bookings are never deleted; a denied booking stays in the collection as a
// historical record but releases its slot for rebooking.
type Booking struct {
	ID     string        `json:"id"`
	SlotID string        `json:"slotId"`
	Status BookingStatus `json:"status"`

	// Customer-supplied fields
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Reason        string `json:"reason"`

	// Denormalized copy of the slot's date and time, kept for history:
	// the slot itself is regenerated from the clock on every start and may
	// fall out of the horizon while the booking record survives.
	Date      string           `json:"date"` // YYYY-MM-DD
	StartTime types.TimeString `json:"startTime"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsActive returns true if the booking still claims its slot.
// Only a denial releases the slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusDenied
}

// IsDecided returns true if an admin has already approved or denied the booking
func (b *Booking) IsDecided() bool {
	return b.Status == StatusApproved || b.Status == StatusDenied
}

// Clone returns a shallow copy of the booking.
// Repositories hand out copies so callers never share the stored record.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}
