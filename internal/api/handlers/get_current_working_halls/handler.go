package get_current_working_halls

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

// Handle GET /api/v1/current-working-halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CurrentWorkingHalls(r.Context())
	if err != nil {
		h.logger.Error("GET /current-working-halls - Failed to get halls: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /current-working-halls - Halls retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
