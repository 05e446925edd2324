package availability

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Repository потокобезопасное in-memory хранилище правил доступности.
// Инвариант: не более одного правила на дату.
type Repository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.AvailabilityRule
	byDate map[string]string // дата -> id правила
}

// NewRepository создает новый экземпляр репозитория правил доступности
func NewRepository() *Repository {
	return &Repository{
		byID:   make(map[string]*domain.AvailabilityRule),
		byDate: make(map[string]string),
	}
}

// ReplaceForDate сохраняет правило, замещая существующее правило на ту же дату
func (r *Repository) ReplaceForDate(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prevID, ok := r.byDate[rule.Date]; ok {
		delete(r.byID, prevID)
	}

	stored := rule.Clone()
	r.byID[stored.ID] = stored
	r.byDate[stored.Date] = stored.ID

	return stored.Clone(), nil
}

// Delete удаляет правило по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule, ok := r.byID[id]
	if !ok {
		return ErrRuleNotFound
	}

	delete(r.byID, id)
	delete(r.byDate, rule.Date)
	return nil
}

// List возвращает все правила, отсортированные по дате по возрастанию
func (r *Repository) List(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.AvailabilityRule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule.Clone())
	}

	// ISO даты корректно сортируются лексикографически
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result, nil
}

// GetByDate возвращает правило на указанную дату, если оно существует
func (r *Repository) GetByDate(ctx context.Context, date string) (*domain.AvailabilityRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDate[date]
	if !ok {
		return nil, ErrRuleNotFound
	}
	return r.byID[id].Clone(), nil
}

// Snapshot возвращает копию коллекции для записи в долговременное хранилище.
// Порядок - по дате по возрастанию, как в List.
func (r *Repository) Snapshot() []*domain.AvailabilityRule {
	rules, _ := r.List(context.Background())
	return rules
}

// Restore заменяет содержимое репозитория данными из снапшота
func (r *Repository) Restore(rules []*domain.AvailabilityRule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]*domain.AvailabilityRule, len(rules))
	r.byDate = make(map[string]string, len(rules))

	for _, rule := range rules {
		stored := rule.Clone()
		r.byID[stored.ID] = stored
		r.byDate[stored.Date] = stored.ID
	}
}
