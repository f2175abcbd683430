package get_pending_approvals

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

// Handle GET /api/v1/pending-approvals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PendingApprovals(r.Context())
	if err != nil {
		h.logger.Error("GET /pending-approvals - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pending-approvals - Bookings retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
