package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Все поля приходят от клиента как есть.
type Request struct {
	SlotID string // ID слота в формате "{date}-{time}"
	Name   string // Имя клиента
	Email  string // Email клиента
	Reason string // Причина записи (свободный текст)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID     string // ID созданного бронирования
	SlotID string // ID слота
	Status string // Статус бронирования (всегда "pending" при создании)

	Name   string // Имя клиента
	Email  string // Email клиента
	Reason string // Причина записи

	// Денормализованные данные слота
	Date      string           // Дата слота (YYYY-MM-DD)
	StartTime types.TimeString // Время начала слота

	CreatedAt time.Time // Время создания
}
