package reject_booking

// RejectBookingRequest HTTP request model; тело запроса необязательно
type RejectBookingRequest struct {
	Reason string `json:"reason"`
}
