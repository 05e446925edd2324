package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// csvHeader заголовок CSV выгрузки бронирований
const csvHeader = `"ID","Name","Email","Date","Time","Reason","Status","Created At"`

// csvCreatedAtFormat формат поля Created At в выгрузке
const csvCreatedAtFormat = "2006-01-02 15:04:05"

// Service сервис для административной работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	persister   SnapshotPersister
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	persister SnapshotPersister,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		persister:   persister,
		logger:      logger,
	}
}

// GetAll возвращает все бронирования, отсортированные от новых к старым
func (s *Service) GetAll(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	// Стабильная сортировка: при равных временах создания сохраняется
	// естественный порядок коллекции
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	s.logger.Info("GetAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus применяет решение администратора к бронированию.
// Статус перезаписывается безусловно - повторное решение по уже решенному
// бронированию допускается и не является ошибкой.
// При подтверждении эмитится приглашение в календарь; недоступность sink
// не блокирует и не ломает обновление статуса.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDecisionStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	// Обновляем статус
	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Эмитим приглашение в календарь при подтверждении
	if updated.Status == domain.StatusApproved {
		s.notifier.BookingApproved(updated)
	}

	// Fire-and-forget запись состояния в долговременное хранилище
	s.persister.PersistAsync()

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// ExportCSV сериализует всю коллекцию бронирований в CSV.
// Каждое поле оборачивается в двойные кавычки, внутренние кавычки
// экранируются удвоением. Порядок строк повторяет естественный порядок
// коллекции. Пустая коллекция дает только строку заголовка.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return "", fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteString("\n")

	for _, b := range bookings {
		fields := []string{
			b.ID,
			b.CustomerName,
			b.CustomerEmail,
			b.Date,
			b.StartTime.String(),
			b.Reason,
			string(b.Status),
			b.CreatedAt.Format(csvCreatedAtFormat),
		}

		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = csvField(f)
		}

		sb.WriteString(strings.Join(quoted, ","))
		sb.WriteString("\n")
	}

	s.logger.Info("ExportCSV: exported %d bookings", len(bookings))
	return sb.String(), nil
}

// csvField оборачивает значение в кавычки с экранированием по правилам CSV
func csvField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
