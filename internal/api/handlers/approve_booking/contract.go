package approve_booking

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
)

type BookingService interface {
	Approve(ctx context.Context, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
