package get_bookings_by_email

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

const msgMissingEmail = "emp_email parameter is required"

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

// Handle GET /api/v1/bookings-by-email?emp_email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("emp_email"))
	if email == "" {
		h.logger.Warn("GET /bookings-by-email - Missing emp_email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.service.ByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /bookings-by-email - Failed to get bookings: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings-by-email - Bookings retrieved: email=%s, count=%d", email, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
