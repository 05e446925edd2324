package delete_availability_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability"
)

const (
	msgNotFound = "правило доступности не найдено"
)

// deleteRuleResponse маркер успешного удаления
type deleteRuleResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availability/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем ruleId из URL
	vars := mux.Vars(r)
	ruleID := vars["ruleId"]

	if err := h.service.DeleteRule(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("DELETE /availability/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availability/{id} - Failed to delete rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/{id} - Rule deleted: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusOK, deleteRuleResponse{Success: true})
}
