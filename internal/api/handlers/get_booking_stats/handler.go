package get_booking_stats

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

// Handle GET /api/v1/booking-stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /booking-stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-stats - Stats retrieved: pending=%d, approved=%d, rejected=%d",
		stats.Pending, stats.Approved, stats.Rejected)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
