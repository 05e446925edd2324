package snapshot

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrSnapshotNotFound возвращается, когда снапшот еще не сохранялся
	ErrSnapshotNotFound = errors.New("snapshot.store: snapshot not found")

	// ErrSaveSnapshot возвращается при ошибке записи снапшота
	ErrSaveSnapshot = errors.New("snapshot.store: failed to save snapshot")

	// ErrLoadSnapshot возвращается при ошибке чтения снапшота
	ErrLoadSnapshot = errors.New("snapshot.store: failed to load snapshot")
)

// Store интерфейс долговременного хранилища снапшотов состояния.
// Хранилище оперирует единственным JSON документом - отдельных таблиц
// по сущностям нет, в памяти процесса лежит источник истины.
type Store interface {
	Save(ctx context.Context, snap *domain.StoreSnapshot) error
	Load(ctx context.Context) (*domain.StoreSnapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
