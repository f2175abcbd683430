package get_employee_bookings

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

const msgMissingEmpCode = "emp_code parameter is required"

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

// Handle GET /api/v1/employee-bookings?emp_code=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	empCode := strings.TrimSpace(r.URL.Query().Get("emp_code"))
	if empCode == "" {
		h.logger.Warn("GET /employee-bookings - Missing emp_code")
		handlers.RespondBadRequest(w, msgMissingEmpCode)
		return
	}

	result, err := h.service.ByEmployee(r.Context(), empCode)
	if err != nil {
		h.logger.Error("GET /employee-bookings - Failed to get bookings: emp_code=%s, error=%v", empCode, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employee-bookings - Bookings retrieved: emp_code=%s, count=%d", empCode, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
