package set_availability

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDateRequired       = "необходимо указать дату"
)

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

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Проверяется только наличие даты; формат даты и попадание времен
	// в каноническую сетку контракт не валидирует
	if req.Date == "" {
		h.logger.Warn("PUT /availability - Date required")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	result, err := h.service.SetAvailability(r.Context(), &req)
	if err != nil {
		h.logger.Error("PUT /availability - Failed to set availability: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /availability - Rule set: rule_id=%s, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
