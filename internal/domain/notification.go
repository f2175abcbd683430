package domain

import "time"

// NotificationKind type of booking email
type NotificationKind string

const (
	NotificationConfirmation NotificationKind = "confirmation"
	NotificationRejection    NotificationKind = "rejection"
)

// BookingNotification payload of a booking email.
// Carries everything needed to render the message without DB access.
type BookingNotification struct {
	Kind        NotificationKind `json:"kind"`
	BookingID   int64            `json:"booking_id"`
	EmpName     string           `json:"emp_name"`
	EmpEmail    string           `json:"emp_email"`
	HallName    string           `json:"hall_name"`
	SlotDate    time.Time        `json:"slot_date"`
	SlotTime    string           `json:"slot_time"`
	Reason      string           `json:"reason,omitempty"`
	Suggestions []SuggestedSlot  `json:"suggestions,omitempty"`
}

// EmailMessage rendered email ready for a mail provider
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
}
