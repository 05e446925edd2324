package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID string `json:"slotId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string `json:"id"`
	SlotID    string `json:"slotId"`
	Status    string `json:"status"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Reason    string `json:"reason"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		SlotID: r.SlotID,
		Name:   r.Name,
		Email:  r.Email,
		Reason: r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		SlotID:    resp.SlotID,
		Status:    resp.Status,
		Name:      resp.Name,
		Email:     resp.Email,
		Reason:    resp.Reason,
		Date:      resp.Date,
		StartTime: resp.StartTime.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
