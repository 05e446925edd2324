package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// SlotListResponse HTTP модель списка слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotListResponse {
	result := &SlotListResponse{
		Slots: make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		result.Slots[i] = SlotResponse{
			ID:        slot.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return result
}
