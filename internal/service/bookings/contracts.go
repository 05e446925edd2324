package bookings

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// Notifier интерфейс эмиссии уведомлений о подтвержденных бронированиях.
// Вызов не возвращает ошибку: недоступность sink не должна ломать операцию.
type Notifier interface {
	BookingApproved(booking *domain.Booking)
}

// SnapshotPersister интерфейс fire-and-forget записи состояния в долговременное хранилище
type SnapshotPersister interface {
	PersistAsync()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
