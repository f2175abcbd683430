package get_hall_booked_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgMissingDate   = "date parameter is required"
	msgInvalidDate   = "некорректный формат date, ожидается YYYY-MM-DD"
	msgHallNotFound  = "зал не найден"
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

// Handle GET /api/v1/halls/{hallId}/booked-slots?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := handlers.PathID(r, "hallId")
	if err != nil {
		h.logger.Warn("GET /halls/{id}/booked-slots - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /halls/{id}/booked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date == nil {
		h.logger.Warn("GET /halls/{id}/booked-slots - Missing date: hall_id=%d", hallID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.HallBookedSlots(r.Context(), hallID, *date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/booked-slots - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		default:
			h.logger.Error("GET /halls/{id}/booked-slots - Failed to get slots: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/booked-slots - Slots retrieved: hall_id=%d, count=%d", hallID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
