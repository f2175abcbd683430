package notifications

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// ErrUnknownKind возвращается для неизвестного типа уведомления
var ErrUnknownKind = errors.New("notifications: unknown notification kind")

const noReason = "No specific reason provided."

// maxReasonRunes ограничивает причину отклонения в теле письма
const maxReasonRunes = 1000

// Render формирует письмо по уведомлению
func Render(n domain.BookingNotification) (domain.EmailMessage, error) {
	date := n.SlotDate.Format(domain.DateFormat)
	msg := domain.EmailMessage{To: n.EmpEmail, ToName: n.EmpName}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", n.EmpName)

	switch n.Kind {
	case domain.NotificationConfirmation:
		msg.Subject = fmt.Sprintf("Booking Confirmed: %s on %s", n.HallName, date)
		fmt.Fprintf(&b, "Your booking for %s on %s at %s has been confirmed.\n\n", n.HallName, date, n.SlotTime)

	case domain.NotificationRejection:
		msg.Subject = fmt.Sprintf("Booking Rejected: %s on %s", n.HallName, date)
		fmt.Fprintf(&b, "We regret to inform you that your booking for %s on %s at %s has been rejected.\n\n",
			n.HallName, date, n.SlotTime)

		reason := truncate(strings.TrimSpace(n.Reason), maxReasonRunes)
		if reason == "" {
			reason = noReason
		}
		fmt.Fprintf(&b, "Reason: %s\n\n", reason)

		if len(n.Suggestions) > 0 {
			b.WriteString("Suggested Next Available Slots:\n")
			for _, s := range n.Suggestions {
				fmt.Fprintf(&b, "- %s at %s\n", s.Date.Format(domain.DateFormat), s.TimeLabel)
			}
			b.WriteString("\n")
		}
		b.WriteString("Please consider booking one of the suggested slots or contact the hall administrator for further assistance.\n\n")

	default:
		return domain.EmailMessage{}, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}

	b.WriteString("Thank you for using the Hall Booking System.\n")
	msg.Body = b.String()
	return msg, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
