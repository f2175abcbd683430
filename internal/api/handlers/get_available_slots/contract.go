package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/service/slots"
)

type SlotService interface {
	ListAvailable(ctx context.Context, date *time.Time, hallID *int64) ([]slots.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
