package create_blocked_date

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/service/blockeddates"
)

type BlockedDateService interface {
	Create(ctx context.Context, req *blockeddates.CreateRequest) (*domain.BlockedDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
