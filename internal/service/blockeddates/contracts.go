package blockeddates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	Exists(ctx context.Context, officeID, hallID int64, date time.Time) (bool, error)
	ExistsExact(ctx context.Context, officeID int64, hallID *int64, date time.Time) (bool, error)
	Create(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error)
}

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
