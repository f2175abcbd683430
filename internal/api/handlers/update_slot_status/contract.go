package update_slot_status

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/service/slots"
)

type SlotService interface {
	SetStatus(ctx context.Context, id int64, status string) (*slots.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
