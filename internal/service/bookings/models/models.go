package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на решение администратора по бронированию
type UpdateStatusRequest struct {
	Status string `json:"status"` // "approved" или "denied"
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     string `json:"id"`
	SlotID string `json:"slotId"`
	Status string `json:"status"`

	Name   string `json:"name"`
	Email  string `json:"email"`
	Reason string `json:"reason"`

	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		SlotID:    b.SlotID,
		Status:    string(b.Status),
		Name:      b.CustomerName,
		Email:     b.CustomerEmail,
		Reason:    b.Reason,
		Date:      b.Date,
		StartTime: b.StartTime.String(),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDecisionStatus конвертирует строку в статус-решение администратора.
// Допустимы только терминальные статусы approved и denied - вернуть
// бронирование в pending через этот путь нельзя.
func ToDecisionStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	if s == domain.StatusApproved || s == domain.StatusDenied {
		return s, nil
	}

	return "", ErrInvalidStatus
}
