package notifications

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Mailer отправка письма через провайдера
type Mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// DeliveryObserver метрики доставки уведомлений
type DeliveryObserver interface {
	ObserveNotification(kind string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
