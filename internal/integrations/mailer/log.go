package mailer

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// LogSender пишет письма в лог вместо отправки (локальная разработка)
type LogSender struct {
	log Logger
}

// NewLogSender создает отправителя-заглушку
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send логирует письмо
func (l *LogSender) Send(_ context.Context, msg domain.EmailMessage) error {
	l.log.Info("LogSender: to=%s subject=%q body=%q", msg.To, msg.Subject, msg.Body)
	return nil
}
