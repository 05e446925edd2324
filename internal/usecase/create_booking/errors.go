package create_booking

import "errors"

var (
	// ErrNameRequired возвращается, когда имя клиента не указано
	ErrNameRequired = errors.New("create_booking: name required")

	// ErrEmailRequired возвращается, когда email не указан
	ErrEmailRequired = errors.New("create_booking: email required")

	// ErrInvalidEmailFormat возвращается при некорректном формате email.
	// Проверка намеренно слабая - только наличие символа @, без RFC 5322.
	ErrInvalidEmailFormat = errors.New("create_booking: invalid email format")

	// ErrReasonRequired возвращается, когда причина записи не указана
	ErrReasonRequired = errors.New("create_booking: reason required")

	// ErrSlotNotFound возвращается, когда слот не входит в сгенерированный горизонт
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotTaken возвращается, когда на слот уже есть активное бронирование
	ErrSlotTaken = errors.New("create_booking: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
