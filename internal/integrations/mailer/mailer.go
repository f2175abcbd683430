// Package mailer отправка писем через внешних провайдеров
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Sender отправляет одно письмо
type Sender interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры провайдера
type Config struct {
	Provider         string // sendgrid | mailersend | log
	FromEmail        string
	FromName         string
	SendGridAPIKey   string
	MailerSendAPIKey string
	Timeout          time.Duration
}

// New создает отправителя по имени провайдера
func New(cfg Config, log Logger) (Sender, error) {
	switch cfg.Provider {
	case "sendgrid":
		return NewSendGrid(cfg.SendGridAPIKey, cfg.FromName, cfg.FromEmail, cfg.Timeout, log)
	case "mailersend":
		return NewMailerSend(cfg.MailerSendAPIKey, cfg.FromName, cfg.FromEmail, cfg.Timeout, log)
	case "log", "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
