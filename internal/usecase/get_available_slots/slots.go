package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// projectAvailability вычисляет эффективную доступность каждого слота сетки.
// Это чистая проекция текущего состояния, ничего не мутирует.
//
// Слот недоступен, если выполняется хотя бы одно из условий:
//   - статическая маска прошедшего времени (сегодняшний слот уже начался);
//   - на слот есть активное (не отклоненное) бронирование;
//   - слот попадает под блокирующее правило на его дату.
//
// Правило с isBlocked=false явно возвращает доступность - оно просто
// не блокирует; занятость бронированием и маску времени оно не отменяет.
func projectAvailability(
	grid []domain.TimeSlot,
	activeSlotIDs map[string]struct{},
	rules []*domain.AvailabilityRule,
) []Slot {
	rulesByDate := make(map[string]*domain.AvailabilityRule, len(rules))
	for _, rule := range rules {
		rulesByDate[rule.Date] = rule
	}

	result := make([]Slot, len(grid))

	for i, slot := range grid {
		available := slot.Available

		if available {
			if _, booked := activeSlotIDs[slot.ID]; booked {
				available = false
			}
		}

		if available {
			if rule, ok := rulesByDate[slot.Date]; ok && rule.Blocks(slot.StartTime.String()) {
				available = false
			}
		}

		result[i] = Slot{
			ID:        slot.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			Available: available,
		}
	}

	return result
}
