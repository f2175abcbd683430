// Package availability подбирает ближайшие свободные слоты зала
package availability

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// ErrInternal возвращается при ошибке чтения реестра слотов
var ErrInternal = errors.New("availability: internal error")

// Service движок подбора альтернативных слотов
type Service struct {
	slotRepo     SlotRepository
	location     *time.Location
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает движок. "Сегодня" определяется в часовом поясе loc.
func NewService(slotRepo SlotRepository, loc *time.Location, windowDays int, logger Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if windowDays <= 0 {
		windowDays = domain.DefaultSuggestionWindowDays
	}
	return &Service{
		slotRepo:     slotRepo,
		location:     loc,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Scan лениво перебирает свободные слоты зала начиная с сегодняшнего дня.
// Воскресенья пропускаются, окно ограничено windowDays днями.
// Внутри дня слоты идут по возрастанию метки времени.
// Последовательность одноразовая: повторный range продолжает с места остановки,
// исчерпанная последовательность больше ничего не возвращает. Не потокобезопасна.
func (s *Service) Scan(ctx context.Context, hallID int64) iter.Seq2[domain.SuggestedSlot, error] {
	today := s.today()
	var (
		day     int
		pending []*domain.Slot
		done    bool
	)

	return func(yield func(domain.SuggestedSlot, error) bool) {
		for !done {
			for len(pending) > 0 {
				slot := pending[0]
				pending = pending[1:]
				if !yield(domain.SuggestedSlot{Date: slot.Date, TimeLabel: slot.TimeLabel}, nil) {
					return
				}
			}

			if day >= s.windowDays {
				done = true
				return
			}
			date := today.AddDate(0, 0, day)
			day++
			if date.Weekday() == time.Sunday {
				continue
			}

			slots, err := s.slotRepo.ListAvailable(ctx, hallID, date)
			if err != nil {
				done = true
				yield(domain.SuggestedSlot{}, fmt.Errorf("%w: Scan - list slots hall=%d date=%s: %v",
					ErrInternal, hallID, date.Format(domain.DateFormat), err))
				return
			}
			pending = slots
		}
	}
}

// Suggest возвращает до count ближайших свободных слотов.
// Пустой результат не является ошибкой.
func (s *Service) Suggest(ctx context.Context, hallID int64, count int) ([]domain.SuggestedSlot, error) {
	if count <= 0 {
		count = domain.DefaultSuggestionCount
	}

	result := make([]domain.SuggestedSlot, 0, count)
	for slot, err := range s.Scan(ctx, hallID) {
		if err != nil {
			s.logger.Error("Suggest: hall=%d: %v", hallID, err)
			return nil, err
		}
		result = append(result, slot)
		if len(result) == count {
			break
		}
	}

	s.logger.Info("Suggest: hall=%d, found %d/%d slots", hallID, len(result), count)
	return result, nil
}

// today текущая дата в часовом поясе сервиса как полночь UTC (формат колонки DATE)
func (s *Service) today() time.Time {
	y, m, d := s.timeProvider.Now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
