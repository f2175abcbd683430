package get_hall_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings"
)

const (
	msgInvalidHallID = "некорректный ID зала"
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

// Handle GET /api/v1/halls/{hallId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := handlers.PathID(r, "hallId")
	if err != nil {
		h.logger.Warn("GET /halls/{id}/bookings - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	result, err := h.service.HallBookings(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/bookings - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		default:
			h.logger.Error("GET /halls/{id}/bookings - Failed to get bookings: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/bookings - Bookings retrieved: hall_id=%d, count=%d", hallID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
