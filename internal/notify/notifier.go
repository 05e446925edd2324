package notify

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// InviteCounter счетчик отправленных приглашений (опционально)
type InviteCounter interface {
	Inc()
}

// CalendarInvite структурированное "приглашение в календарь".
// Реальной доставки нет - payload эмитится в лог как имитация письма.
type CalendarInvite struct {
	Recipient   string `json:"recipient"`
	Subject     string `json:"subject"`
	EventDate   string `json:"eventDate"`
	EventTime   string `json:"eventTime"`
	Description string `json:"description"`
}

// Notifier эмитит уведомления о подтвержденных бронированиях.
// Сбой эмиссии никогда не влияет на результат операции, которая её вызвала.
type Notifier struct {
	log     Logger
	invites InviteCounter // может быть nil, если метрики выключены
}

// New создает новый notifier
func New(log Logger, invites InviteCounter) *Notifier {
	return &Notifier{
		log:     log,
		invites: invites,
	}
}

// BookingApproved формирует приглашение в календарь по подтвержденному
// бронированию и эмитит его в лог
func (n *Notifier) BookingApproved(booking *domain.Booking) {
	invite := CalendarInvite{
		Recipient:   booking.CustomerEmail,
		Subject:     fmt.Sprintf("Appointment confirmed: %s %s", booking.Date, booking.StartTime),
		EventDate:   booking.Date,
		EventTime:   booking.StartTime.String(),
		Description: booking.Reason,
	}

	payload, err := json.Marshal(invite)
	if err != nil {
		n.log.Error("Notify: failed to build calendar invite for booking id=%s: %v", booking.ID, err)
		return
	}

	if n.invites != nil {
		n.invites.Inc()
	}

	n.log.Info("Notify: calendar invite emitted for booking id=%s: %s", booking.ID, payload)
}
