package send_otp

// SendOTPRequest HTTP request model
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	Message string `json:"message"`
}
