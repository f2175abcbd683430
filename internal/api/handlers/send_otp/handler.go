package send_otp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/otp"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDomainNotAllowed   = "Email domain not allowed"
	msgTooManyRequests    = "слишком много запросов кода, попробуйте позже"
	msgSent               = "OTP sent successfully"
	msgSendFailedFormat   = "Failed to send OTP: %s"
)

type Handler struct {
	service OTPService
	logger  Logger
}

func NewHandler(service OTPService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/send-otp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /send-otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /send-otp - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	if err := h.service.Send(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, otp.ErrDomainNotAllowed):
			h.logger.Warn("POST /send-otp - Domain not allowed: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgDomainNotAllowed)

		case errors.Is(err, otp.ErrTooManyRequests):
			h.logger.Warn("POST /send-otp - Too many requests: email=%s", req.Email)
			handlers.RespondTooManyRequests(w, msgTooManyRequests)

		case errors.Is(err, otp.ErrSendFailed):
			h.logger.Error("POST /send-otp - Failed to send email: email=%s, error=%v", req.Email, err)
			cause := strings.TrimPrefix(err.Error(), otp.ErrSendFailed.Error()+": ")
			handlers.RespondError(w, http.StatusInternalServerError, fmt.Sprintf(msgSendFailedFormat, cause))

		default:
			h.logger.Error("POST /send-otp - Failed to issue OTP: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /send-otp - OTP sent: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgSent})
}
