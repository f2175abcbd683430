// Package slots чтение и администрирование реестра слотов
package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/slot"
)

// Service сервис реестра слотов
type Service struct {
	repo   SlotRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo SlotRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListAvailable возвращает свободные слоты. Без даты возвращаются все свободные слоты.
func (s *Service) ListAvailable(ctx context.Context, date *time.Time, hallID *int64) ([]SlotResponse, error) {
	items, err := s.repo.ListAvailableByDate(ctx, date, hallID)
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	resp := make([]SlotResponse, 0, len(items))
	for _, slot := range items {
		resp = append(resp, fromDomainSlot(slot))
	}
	return resp, nil
}

// SetStatus административно меняет статус слота
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*SlotResponse, error) {
	st := domain.SlotStatus(status)
	if !st.IsValid() {
		s.logger.Warn("SetStatus: invalid status %q for slot id=%d", status, id)
		return nil, ErrInvalidStatus
	}

	if err := s.repo.SetStatus(ctx, id, st); err != nil {
		return nil, s.mapError("SetStatus", id, err)
	}

	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("SetStatus", id, err)
	}

	s.logger.Info("SetStatus: slot id=%d set to %s", id, st)
	resp := fromDomainSlot(slot)
	return &resp, nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		s.logger.Warn("%s: slot id=%d not found", op, id)
		return ErrSlotNotFound
	}
	s.logger.Error("%s: repository error for slot id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
