package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// GenerateSlotGrid produces the canonical set of time slots for the booking
// horizon: horizonWeeks week blocks starting at the Monday of the current
// week, weekdays only, every 30-minute boundary from 09:00 up to but not
// including 17:00. The result is ordered by (date, time) ascending.
//
// Past dates are not generated at all. For today, slots whose start time has
// already elapsed are generated but statically marked unavailable, so the
// customer view still shows the full day grid.
func GenerateSlotGrid(now time.Time, horizonWeeks int) []TimeSlot {
	if horizonWeeks <= 0 {
		horizonWeeks = DefaultHorizonWeeks
	}

	monday := weekStart(now)
	today := dateOnly(now)
	nowTime := types.NewTimeString(now)

	slots := make([]TimeSlot, 0, horizonWeeks*5*daySlotCount())

	for week := 0; week < horizonWeeks; week++ {
		for day := 0; day < 5; day++ { // Monday..Friday
			date := monday.AddDate(0, 0, week*7+day)

			// Fully past dates are skipped outright
			if date.Before(today) {
				continue
			}

			dateStr := date.Format(DateFormat)
			isToday := date.Equal(today)

			for t := DayStartTime; t.IsBefore(DayEndTime); {
				available := true
				if isToday && !t.IsAfter(nowTime) {
					// Today's elapsed start times stay in the grid but are
					// statically unavailable
					available = false
				}

				slots = append(slots, TimeSlot{
					ID:        SlotID(dateStr, t),
					Date:      dateStr,
					StartTime: t,
					Available: available,
				})

				next, err := t.AddMinutes(SlotDurationMinutes)
				if err != nil {
					break
				}
				t = next
			}
		}
	}

	return slots
}

// FindSlot looks up a slot by its id in a generated grid.
// Returns nil if the id does not belong to the current horizon.
func FindSlot(grid []TimeSlot, slotID string) *TimeSlot {
	for i := range grid {
		if grid[i].ID == slotID {
			return &grid[i]
		}
	}
	return nil
}

// weekStart returns the Monday of the week containing t (ISO week semantics:
// Sunday belongs to the week that started six days earlier).
func weekStart(t time.Time) time.Time {
	d := dateOnly(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// dateOnly truncates t to midnight in its own location
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daySlotCount returns the number of slots in a full working day
func daySlotCount() int {
	start, _ := DayStartTime.Minutes()
	end, _ := DayEndTime.Minutes()
	return (end - start) / SlotDurationMinutes
}
