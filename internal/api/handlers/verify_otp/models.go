package verify_otp

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	Message string `json:"message"`
}
