package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// SendGrid отправитель через SendGrid v3 API
type SendGrid struct {
	client  *sendgrid.Client
	from    *mail.Email
	timeout time.Duration
	log     Logger
}

// NewSendGrid создает отправителя SendGrid
func NewSendGrid(apiKey, fromName, fromEmail string, timeout time.Duration, log Logger) (*SendGrid, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, fmt.Errorf("%w: sendgrid api key and from_email are required", ErrNotConfigured)
	}
	return &SendGrid{
		client:  sendgrid.NewSendClient(apiKey),
		from:    mail.NewEmail(fromName, fromEmail),
		timeout: timeout,
		log:     log,
	}, nil
}

// Send отправляет письмо в виде plain text
func (s *SendGrid) Send(ctx context.Context, msg domain.EmailMessage) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmailPlainText(s.from, msg.Subject, to, msg.Body)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: sendgrid: %v", ErrSend, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid status=%d body=%s", ErrSend, resp.StatusCode, resp.Body)
	}

	s.log.Info("SendGrid: sent %q to %s, status=%d", msg.Subject, msg.To, resp.StatusCode)
	return nil
}
