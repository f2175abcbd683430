package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Count(ctx context.Context, filter domain.BookingFilter) (int64, error)
	CountByStatus(ctx context.Context, filter domain.BookingFilter) (domain.StatusCounts, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	SoftDelete(ctx context.Context, id int64) error
}

// SlotRepository интерфейс реестра слотов
type SlotRepository interface {
	SetStatusByKey(ctx context.Context, key domain.SlotKey, status domain.SlotStatus) error
}

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	Count(ctx context.Context, filter domain.HallFilter) (int64, error)
}

// SuggestionEngine подбор альтернативных слотов
type SuggestionEngine interface {
	Suggest(ctx context.Context, hallID int64, count int) ([]domain.SuggestedSlot, error)
}

// Dispatcher отправка уведомлений о бронировании
type Dispatcher interface {
	Dispatch(ctx context.Context, n domain.BookingNotification) error
}

// TransitionObserver метрики переходов состояния
type TransitionObserver interface {
	ObserveTransition(transition string, err error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
