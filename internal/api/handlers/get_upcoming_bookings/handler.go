package get_upcoming_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
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

// Handle GET /api/v1/upcoming-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Upcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /upcoming-bookings - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /upcoming-bookings - Bookings retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
