package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Slot grid constants. The bookable day is a fixed weekday grid of
// 30-minute slots from 09:00 up to (not including) 17:00, so the last
// bookable start time is 16:30.
const (
	SlotDurationMinutes = 30

	DayStartTime types.TimeString = "09:00"
	DayEndTime   types.TimeString = "17:00"
)

// DefaultHorizonWeeks is the number of week blocks generated from the
// Monday of the current week (current week plus the next one).
const DefaultHorizonWeeks = 2

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
