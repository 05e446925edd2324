package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	persister    SnapshotPersister
	timeProvider TimeProvider
	created      CreatedCounter // может быть nil, если метрики выключены
	horizonWeeks int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	persister SnapshotPersister,
	horizonWeeks int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		persister:    persister,
		timeProvider: &RealTimeProvider{},
		horizonWeeks: horizonWeeks,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithCreatedCounter подключает счетчик принятых заявок
func (uc *UseCase) WithCreatedCounter(c CreatedCounter) *UseCase {
	uc.created = c
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка занятости слота и вставка выполняются репозиторием как один
// атомарный шаг, поэтому два одновременных запроса на один слот не могут
// оба пройти проверку конфликта.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%s, email=%s", req.SlotID, req.Email)

	// 1. Валидация входных данных (фиксированный порядок, см. validation.go)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что слот входит в текущий горизонт бронирования.
	// Прошедшие даты в горизонт не попадают, поэтому для них это NOT_FOUND.
	grid := domain.GenerateSlotGrid(now, uc.horizonWeeks)
	slot := domain.FindSlot(grid, req.SlotID)
	if slot == nil {
		uc.logger.Warn("CreateBooking: slot %s not found in current horizon", req.SlotID)
		return nil, ErrSlotNotFound
	}

	// 4. Создаем бронирование со статусом pending и денормализованной
	// копией даты/времени слота
	booking := &domain.Booking{
		ID:            uuid.NewString(),
		SlotID:        slot.ID,
		Status:        domain.StatusPending,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Reason:        req.Reason,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		CreatedAt:     now,
	}

	// 5. Атомарная проверка конфликта + вставка.
	// Занятость слотом активного бронирования - единственная проверка
	// доступности на этом пути: правила блокировки и маска прошедшего
	// времени отсекаются на стороне клиентского календаря.
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s already has an active booking", req.SlotID)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	if uc.created != nil {
		uc.created.Inc()
	}

	// 6. Fire-and-forget запись состояния в долговременное хранилище
	uc.persister.PersistAsync()

	uc.logger.Info("CreateBooking: successfully created booking id=%s for slot=%s", created.ID, created.SlotID)

	return &Response{
		ID:        created.ID,
		SlotID:    created.SlotID,
		Status:    string(created.Status),
		Name:      created.CustomerName,
		Email:     created.CustomerEmail,
		Reason:    created.Reason,
		Date:      created.Date,
		StartTime: created.StartTime,
		CreatedAt: created.CreatedAt,
	}, nil
}
