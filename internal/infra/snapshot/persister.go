package snapshot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// saveTimeout предельное время одной записи снапшота
const saveTimeout = 5 * time.Second

// BookingSource источник текущей коллекции бронирований
type BookingSource interface {
	Snapshot() []*domain.Booking
}

// RuleSource источник текущей коллекции правил доступности
type RuleSource interface {
	Snapshot() []*domain.AvailabilityRule
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// realTimeProvider реальный провайдер времени для production
type realTimeProvider struct{}

func (p *realTimeProvider) Now() time.Time { return time.Now() }

// SaveErrorCounter счетчик неудачных записей снапшота (опционально)
type SaveErrorCounter interface {
	Inc()
}

// Persister собирает снапшот состояния из репозиториев и пишет его в Store
// в режиме fire-and-forget: ошибка записи логируется, но не возвращается
// вызывающему - источником истины остается состояние в памяти.
type Persister struct {
	store        Store
	bookings     BookingSource
	rules        RuleSource
	timeProvider TimeProvider
	saveErrors   SaveErrorCounter // может быть nil, если метрики выключены
	log          Logger
}

// NewPersister создает новый persister снапшотов
func NewPersister(store Store, bookings BookingSource, rules RuleSource, saveErrors SaveErrorCounter, log Logger) *Persister {
	return &Persister{
		store:        store,
		bookings:     bookings,
		rules:        rules,
		timeProvider: &realTimeProvider{},
		saveErrors:   saveErrors,
		log:          log,
	}
}

// PersistAsync делает консистентный снимок коллекций синхронно,
// а запись в хранилище выполняет в отдельной горутине
func (p *Persister) PersistAsync() {
	snap := &domain.StoreSnapshot{
		Bookings:          p.bookings.Snapshot(),
		AvailabilityRules: p.rules.Snapshot(),
		LastUpdated:       p.timeProvider.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := p.store.Save(ctx, snap); err != nil {
			if p.saveErrors != nil {
				p.saveErrors.Inc()
			}
			p.log.Error("Snapshot: failed to persist store state (%d bookings, %d rules): %v",
				len(snap.Bookings), len(snap.AvailabilityRules), err)
			return
		}

		p.log.Info("Snapshot: persisted store state (%d bookings, %d rules)",
			len(snap.Bookings), len(snap.AvailabilityRules))
	}()
}
