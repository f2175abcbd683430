package get_hall_booked_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
)

type BookingService interface {
	HallBookedSlots(ctx context.Context, hallID int64, date time.Time) ([]models.BookedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
