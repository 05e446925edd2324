package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

// Service сервис для административного управления правилами доступности
type Service struct {
	ruleRepo     RuleRepository
	persister    SnapshotPersister
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса правил доступности
func NewService(
	ruleRepo RuleRepository,
	persister SnapshotPersister,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:     ruleRepo,
		persister:    persister,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (используется в тестах)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// SetAvailability создает правило доступности на дату, замещая прежнее
// правило на эту дату, если оно было
func (s *Service) SetAvailability(ctx context.Context, req *models.SetAvailabilityRequest) (*models.RuleResponse, error) {
	s.logger.Info("SetAvailability: date=%s, times=%d, blocked=%v", req.Date, len(req.TimeSlots), req.IsBlocked)

	rule := &domain.AvailabilityRule{
		ID:        uuid.NewString(),
		Date:      req.Date,
		TimeSlots: append([]string(nil), req.TimeSlots...),
		IsBlocked: req.IsBlocked,
		Reason:    req.Reason,
		CreatedAt: s.timeProvider.Now(),
	}

	created, err := s.ruleRepo.ReplaceForDate(ctx, rule)
	if err != nil {
		s.logger.Error("SetAvailability: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	// Fire-and-forget запись состояния в долговременное хранилище
	s.persister.PersistAsync()

	s.logger.Info("SetAvailability: rule id=%s set for date=%s", created.ID, created.Date)
	return models.FromDomainRule(created), nil
}

// ListRules возвращает все правила доступности по возрастанию даты
func (s *Service) ListRules(ctx context.Context) (*models.RuleListResponse, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRules: fetched %d rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// DeleteRule удаляет правило доступности по ID
func (s *Service) DeleteRule(ctx context.Context, ruleID string) error {
	s.logger.Info("DeleteRule: deleting rule id=%s", ruleID)

	if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule id=%s not found", ruleID)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for rule id=%s: %v", ruleID, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	// Fire-and-forget запись состояния в долговременное хранилище
	s.persister.PersistAsync()

	s.logger.Info("DeleteRule: successfully deleted rule id=%s", ruleID)
	return nil
}
