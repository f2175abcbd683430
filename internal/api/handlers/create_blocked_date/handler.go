package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HallBookingService/internal/service/blockeddates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат blocked_date, ожидается YYYY-MM-DD"
	msgAlreadyBlocked     = "дата уже заблокирована"
	msgHallNotFound       = "зал не найден"
	msgOfficeMismatch     = "зал не принадлежит указанному офису"
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

// Handle POST /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /blocked-dates - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	adminCode, _ := middleware.GetAdminCode(r.Context())

	serviceReq, err := req.ToServiceRequest(adminCode)
	if err != nil {
		h.logger.Warn("POST /blocked-dates - Failed to parse blocked_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blocked, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrAlreadyBlocked):
			h.logger.Warn("POST /blocked-dates - Already blocked: office_id=%d, date=%s", req.OfficeID, req.BlockedDate)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, blockeddates.ErrHallNotFound):
			h.logger.Warn("POST /blocked-dates - Hall not found: office_id=%d", req.OfficeID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, blockeddates.ErrHallOfficeMismatch):
			h.logger.Warn("POST /blocked-dates - Office mismatch: office_id=%d", req.OfficeID)
			handlers.RespondBadRequest(w, msgOfficeMismatch)

		case errors.Is(err, blockeddates.ErrInvalidInput):
			h.logger.Warn("POST /blocked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /blocked-dates - Failed to block date: office_id=%d, error=%v", req.OfficeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Date blocked: id=%d, office_id=%d, date=%s, admin=%s",
		blocked.ID, blocked.OfficeID, req.BlockedDate, adminCode)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(blocked))
}
