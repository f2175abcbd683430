package verify_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HallBookingService/internal/service/otp"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOTP         = "Invalid OTP"
	msgExpired            = "OTP expired"
	msgVerified           = "OTP verified successfully"
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

// Handle POST /api/v1/verify-otp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /verify-otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// код неправильной длины не может совпасть ни с одним выданным
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /verify-otp - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOTP)
		return
	}

	if err := h.service.Verify(r.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, otp.ErrInvalidOTP):
			h.logger.Warn("POST /verify-otp - Invalid OTP: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidOTP)

		case errors.Is(err, otp.ErrOTPExpired):
			h.logger.Warn("POST /verify-otp - OTP expired: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgExpired)

		default:
			h.logger.Error("POST /verify-otp - Failed to verify OTP: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /verify-otp - OTP verified: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgVerified})
}
