package booking

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Repository потокобезопасное in-memory хранилище бронирований.
// Хранилище является источником истины на время работы процесса;
// долговременное зеркало состояния пишется отдельно через снапшоты.
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository() *Repository {
	return &Repository{
		bookings: make([]*domain.Booking, 0),
		byID:     make(map[string]*domain.Booking),
	}
}

// Create добавляет новое бронирование.
// Проверка занятости слота и вставка выполняются под одной блокировкой -
// это критическая секция, которая гарантирует инвариант "не более одного
// активного бронирования на слот" при конкурентных запросах.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.SlotID == booking.SlotID && b.IsActive() {
			return nil, ErrSlotTaken
		}
	}

	stored := booking.Clone()
	r.bookings = append(r.bookings, stored)
	r.byID[stored.ID] = stored

	return stored.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b.Clone(), nil
}

// GetAll возвращает все бронирования в порядке создания (естественный порядок коллекции)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		result[i] = b.Clone()
	}
	return result, nil
}

// ActiveSlotIDs возвращает множество слотов, занятых активными бронированиями
func (r *Repository) ActiveSlotIDs(ctx context.Context) (map[string]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make(map[string]struct{})
	for _, b := range r.bookings {
		if b.IsActive() {
			ids[b.SlotID] = struct{}{}
		}
	}
	return ids, nil
}

// UpdateStatus безусловно перезаписывает статус бронирования.
// Повторное решение по уже решенному бронированию не отклоняется.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	b.Status = status
	return b.Clone(), nil
}

// Snapshot возвращает копию коллекции для записи в долговременное хранилище
func (r *Repository) Snapshot() []*domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		result[i] = b.Clone()
	}
	return result
}

// Restore заменяет содержимое репозитория данными из снапшота.
// Вызывается один раз при старте процесса, до открытия HTTP порта.
func (r *Repository) Restore(bookings []*domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = make([]*domain.Booking, 0, len(bookings))
	r.byID = make(map[string]*domain.Booking, len(bookings))

	for _, b := range bookings {
		stored := b.Clone()
		r.bookings = append(r.bookings, stored)
		r.byID[stored.ID] = stored
	}
}
