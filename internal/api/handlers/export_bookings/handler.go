package export_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	csv, err := h.service.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/export - Failed to export bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	w.WriteHeader(http.StatusOK)

	// Ошибка записи в уже открытый ответ невосстановима, игнорируем
	_, _ = w.Write([]byte(csv))
}
