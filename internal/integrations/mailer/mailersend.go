package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// MailerSend отправитель через MailerSend API
type MailerSend struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	timeout time.Duration
	log     Logger
}

// NewMailerSend создает отправителя MailerSend
func NewMailerSend(apiKey, fromName, fromEmail string, timeout time.Duration, log Logger) (*MailerSend, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, fmt.Errorf("%w: mailersend api key and from_email are required", ErrNotConfigured)
	}
	return &MailerSend{
		client:  mailersend.NewMailersend(apiKey),
		from:    mailersend.From{Name: fromName, Email: fromEmail},
		timeout: timeout,
		log:     log,
	}, nil
}

// Send отправляет письмо в виде plain text
func (m *MailerSend) Send(ctx context.Context, msg domain.EmailMessage) error {
	ctx, cancel := withTimeout(ctx, m.timeout)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{{Name: msg.ToName, Email: msg.To}})
	message.SetSubject(msg.Subject)
	message.SetText(msg.Body)

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: mailersend: %v", ErrSend, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%w: mailersend status=%d body=%s", ErrSend, res.StatusCode, strings.TrimSpace(string(body)))
	}

	m.log.Info("MailerSend: sent %q to %s, message_id=%s", msg.Subject, msg.To, res.Header.Get("X-Message-Id"))
	return nil
}
