package otp

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// OTPRepository интерфейс репозитория кодов
type OTPRepository interface {
	Create(ctx context.Context, otp *domain.EmailOTP) (*domain.EmailOTP, error)
	Find(ctx context.Context, email, code string) (*domain.EmailOTP, error)
	DeleteByEmail(ctx context.Context, email string) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RateLimiter ограничение частоты отправки
type RateLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}

// Mailer отправка письма
type Mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
