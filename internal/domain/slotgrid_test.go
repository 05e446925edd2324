package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// 2025-03-12 is a Wednesday
var wednesday = time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC)

func TestGenerateSlotGrid_Shape(t *testing.T) {
	grid := GenerateSlotGrid(wednesday, 2)

	// Monday and Tuesday of the current week are past: 8 weekdays remain,
	// 16 half-hour slots each
	require.Len(t, grid, 8*16)

	validTimes := map[types.TimeString]bool{}
	for tm := DayStartTime; tm.IsBefore(DayEndTime); {
		validTimes[tm] = true
		next, err := tm.AddMinutes(SlotDurationMinutes)
		require.NoError(t, err)
		tm = next
	}

	for _, slot := range grid {
		date, err := time.Parse(DateFormat, slot.Date)
		require.NoError(t, err)

		wd := date.Weekday()
		assert.NotEqual(t, time.Saturday, wd, "slot %s falls on Saturday", slot.ID)
		assert.NotEqual(t, time.Sunday, wd, "slot %s falls on Sunday", slot.ID)

		assert.True(t, validTimes[slot.StartTime], "slot %s has off-grid time %s", slot.ID, slot.StartTime)
		assert.Equal(t, SlotID(slot.Date, slot.StartTime), slot.ID)
	}
}

func TestGenerateSlotGrid_Ordering(t *testing.T) {
	grid := GenerateSlotGrid(wednesday, 2)

	for i := 1; i < len(grid); i++ {
		prev, cur := grid[i-1], grid[i]
		if prev.Date == cur.Date {
			assert.True(t, prev.StartTime.IsBefore(cur.StartTime),
				"slots out of order: %s before %s", prev.ID, cur.ID)
		} else {
			assert.Less(t, prev.Date, cur.Date)
		}
	}
}

func TestGenerateSlotGrid_PastDatesSkipped(t *testing.T) {
	grid := GenerateSlotGrid(wednesday, 2)

	for _, slot := range grid {
		assert.GreaterOrEqual(t, slot.Date, "2025-03-12", "past date generated: %s", slot.ID)
	}

	// First generated slot is today's 09:00
	require.NotEmpty(t, grid)
	assert.Equal(t, "2025-03-12-09:00", grid[0].ID)
	// Last slot is the Friday of the next week at 16:30
	assert.Equal(t, "2025-03-21-16:30", grid[len(grid)-1].ID)
}

func TestGenerateSlotGrid_ElapsedTimesMasked(t *testing.T) {
	grid := GenerateSlotGrid(wednesday, 2)

	for _, slot := range grid {
		if slot.Date != "2025-03-12" {
			assert.True(t, slot.Available, "future-day slot %s should be available", slot.ID)
			continue
		}
		// now = 10:15, so 09:00/09:30/10:00 have already started
		if !slot.StartTime.IsAfter("10:15") {
			assert.False(t, slot.Available, "elapsed slot %s should be masked", slot.ID)
		} else {
			assert.True(t, slot.Available, "upcoming slot %s should be available", slot.ID)
		}
	}
}

func TestGenerateSlotGrid_SundayBelongsToPreviousWeek(t *testing.T) {
	// 2025-03-16 is a Sunday: the current ISO week started on 2025-03-10,
	// so all of its weekdays are already past and only the next week remains
	sunday := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	grid := GenerateSlotGrid(sunday, 2)

	require.Len(t, grid, 5*16)
	assert.Equal(t, "2025-03-17-09:00", grid[0].ID)
	for _, slot := range grid {
		assert.True(t, slot.Available)
	}
}

func TestFindSlot(t *testing.T) {
	grid := GenerateSlotGrid(wednesday, 2)

	slot := FindSlot(grid, "2025-03-13-11:30")
	require.NotNil(t, slot)
	assert.Equal(t, "2025-03-13", slot.Date)
	assert.Equal(t, types.TimeString("11:30"), slot.StartTime)

	assert.Nil(t, FindSlot(grid, "2025-03-15-11:30"), "Saturday must not be in the grid")
	assert.Nil(t, FindSlot(grid, "2020-01-01-09:00"), "past date must not be in the grid")
}
