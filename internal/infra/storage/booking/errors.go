package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда на слот уже есть активное (не отклоненное) бронирование
	ErrSlotTaken = errors.New("booking.repository: slot already has an active booking")
)
