package get_blocked_dates

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

type BlockedDateService interface {
	List(ctx context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
