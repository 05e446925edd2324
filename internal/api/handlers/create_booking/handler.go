package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNameRequired       = "необходимо указать имя"
	msgEmailRequired      = "необходимо указать email"
	msgInvalidEmail       = "некорректный формат email"
	msgReasonRequired     = "необходимо указать причину записи"
	msgSlotNotFound       = "слот не найден"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrNameRequired):
			h.logger.Warn("POST /bookings - Name required: slot=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, createBooking.ErrEmailRequired):
			h.logger.Warn("POST /bookings - Email required: slot=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgEmailRequired)

		case errors.Is(err, createBooking.ErrInvalidEmailFormat):
			h.logger.Warn("POST /bookings - Invalid email format: slot=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrReasonRequired):
			h.logger.Warn("POST /bookings - Reason required: slot=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: slot=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, slot=%s", result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
