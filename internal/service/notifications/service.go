// Package notifications доставка писем о бронированиях с ограниченным числом повторов
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

var (
	// ErrDeliveryFailed возвращается, когда все попытки отправки исчерпаны
	ErrDeliveryFailed = errors.New("notifications: delivery failed")

	// ErrBadPayload возвращается для сообщения очереди, которое не удалось разобрать
	ErrBadPayload = errors.New("notifications: bad payload")
)

// Service рендерит и доставляет уведомления.
// В режиме direct используется как Dispatcher, в режиме queue обрабатывает сообщения очереди.
type Service struct {
	mailer      Mailer
	observer    DeliveryObserver
	maxAttempts int
	backoff     time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	logger      Logger
}

// NewService создает сервис доставки
func NewService(mailer Mailer, observer DeliveryObserver, maxAttempts int, backoff time.Duration, logger Logger) *Service {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Service{
		mailer:      mailer,
		observer:    observer,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		sleep:       sleepContext,
		logger:      logger,
	}
}

// Dispatch синхронно доставляет уведомление
func (s *Service) Dispatch(ctx context.Context, n domain.BookingNotification) error {
	return s.Deliver(ctx, n)
}

// HandleMessage разбирает сообщение очереди и доставляет уведомление
func (s *Service) HandleMessage(ctx context.Context, body []byte) error {
	var n domain.BookingNotification
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return s.Deliver(ctx, n)
}

// Deliver рендерит письмо и отправляет его, повторяя попытки с экспоненциальной паузой
func (s *Service) Deliver(ctx context.Context, n domain.BookingNotification) error {
	msg, err := Render(n)
	if err != nil {
		s.observe(n.Kind, err)
		return err
	}

	delay := s.backoff
	for attempt := 1; ; attempt++ {
		err = s.mailer.Send(ctx, msg)
		if err == nil {
			s.logger.Info("Deliver: %s for booking id=%d sent to %s (attempt %d)", n.Kind, n.BookingID, n.EmpEmail, attempt)
			s.observe(n.Kind, nil)
			return nil
		}

		s.logger.Warn("Deliver: attempt %d/%d for booking id=%d failed: %v", attempt, s.maxAttempts, n.BookingID, err)
		if attempt >= s.maxAttempts {
			break
		}
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			err = sleepErr
			break
		}
		delay *= 2
	}

	err = fmt.Errorf("%w: booking id=%d: %v", ErrDeliveryFailed, n.BookingID, err)
	s.observe(n.Kind, err)
	return err
}

func (s *Service) observe(kind domain.NotificationKind, err error) {
	if s.observer != nil {
		s.observer.ObserveNotification(string(kind), err)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
