package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

const (
	msgInvalidDate   = "некорректный формат date, ожидается YYYY-MM-DD"
	msgInvalidHallID = "некорректный hall_id"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=&hall_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	hallID, err := handlers.QueryInt64(r, "hall_id")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid hall_id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	result, err := h.service.ListAvailable(r.Context(), date, hallID)
	if err != nil {
		h.logger.Error("GET /available-slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
