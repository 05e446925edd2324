package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// SetAvailabilityRequest запрос на установку правила доступности на дату.
// Формат даты и попадание времен в каноническую сетку не валидируются -
// это ответственность вызывающей стороны.
type SetAvailabilityRequest struct {
	Date      string   `json:"date"`      // YYYY-MM-DD
	TimeSlots []string `json:"timeSlots"` // HH:MM
	IsBlocked bool     `json:"isBlocked"`
	Reason    *string  `json:"reason,omitempty"`
}

// Response модели

// RuleResponse ответ с данными правила доступности
type RuleResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	TimeSlots []string  `json:"timeSlots"`
	IsBlocked bool      `json:"isBlocked"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:        r.ID,
		Date:      r.Date,
		TimeSlots: append([]string(nil), r.TimeSlots...),
		IsBlocked: r.IsBlocked,
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.AvailabilityRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}

	for _, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}

	return resp
}
