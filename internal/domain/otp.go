package domain

import (
	"strings"
	"time"
)

// EmailOTP one-time code sent to an employee email
type EmailOTP struct {
	ID        int64
	Email     string
	Code      string
	CreatedAt time.Time
}

// IsExpired returns true once ttl has elapsed since creation
func (o *EmailOTP) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.After(o.CreatedAt.Add(ttl))
}

// EmailDomain returns the lower-cased part after '@', or "" if there is none
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
