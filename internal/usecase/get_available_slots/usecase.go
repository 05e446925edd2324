package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case для получения сетки слотов с эффективной доступностью
type UseCase struct {
	bookingRepo  BookingRepository
	ruleRepo     RuleRepository
	timeProvider TimeProvider
	horizonWeeks int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ruleRepo RuleRepository,
	horizonWeeks int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ruleRepo:     ruleRepo,
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

// Execute выполняет use case получения доступных слотов.
// Возвращает полную сетку горизонта - недоступные слоты не фильтруются,
// решение об их отображении принимает вызывающая сторона.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Получаем текущее время и генерируем сетку слотов
	now := uc.timeProvider.Now()
	grid := domain.GenerateSlotGrid(now, uc.horizonWeeks)

	// 2. Получаем занятые слоты
	activeSlotIDs, err := uc.bookingRepo.ActiveSlotIDs(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get active bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get active bookings: %v", ErrInternal, err)
	}

	// 3. Получаем правила доступности
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 4. Вычисляем эффективную доступность каждого слота
	slots := projectAvailability(grid, activeSlotIDs, rules)

	uc.logger.Info("GetAvailableSlots: projected %d slots (%d booked, %d rules)",
		len(slots), len(activeSlotIDs), len(rules))

	return &Response{Slots: slots}, nil
}
