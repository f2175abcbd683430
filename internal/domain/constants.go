package domain

// Suggestion engine defaults
const (
	DefaultSuggestionCount      = 5
	DefaultSuggestionWindowDays = 30
)

// Dashboard
const (
	DashboardUpcomingLimit = 5
)

// OTP
const (
	OTPLength            = 6
	DefaultOTPTTLMinutes = 5
)

// Validation limits
const (
	MaxDescriptionLength = 2000
	MaxSlotTimeLength    = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
