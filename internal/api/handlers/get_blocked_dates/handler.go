package get_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

const (
	msgMissingStartDate = "start_date parameter is required"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service BlockedDateService
	logger  Logger
}

func NewHandler(service BlockedDateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/blocked-dates/by-date?start_date=&end_date=&hall_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToFilter(r)
	if err != nil {
		h.logger.Warn("GET /blocked-dates/by-date - Invalid parameters: %v", err)
		if errors.Is(err, errMissingStartDate) {
			handlers.RespondBadRequest(w, msgMissingStartDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidParams)
		}
		return
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /blocked-dates/by-date - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-dates/by-date - Blocked dates retrieved: count=%d", len(items))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(items))
}
