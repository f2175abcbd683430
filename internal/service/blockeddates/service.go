// Package blockeddates проверка и администрирование заблокированных дат
package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	blockedDateRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/blockeddate"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
)

// Service сервис заблокированных дат
type Service struct {
	repo      BlockedDateRepository
	hallRepo  HallRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo BlockedDateRepository, hallRepo HallRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		hallRepo:  hallRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// IsBlocked сообщает, заблокирована ли дата для зала: запись на сам зал
// или запись без зала на весь офис
func (s *Service) IsBlocked(ctx context.Context, officeID, hallID int64, date time.Time) (bool, error) {
	blocked, err := s.repo.Exists(ctx, officeID, hallID, date)
	if err != nil {
		s.logger.Error("IsBlocked: office=%d, hall=%d, date=%s: %v",
			officeID, hallID, date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: IsBlocked - repository error: %v", ErrInternal, err)
	}
	return blocked, nil
}

// CreateRequest запрос на блокировку даты
type CreateRequest struct {
	OfficeID  int64
	HallID    *int64
	Date      time.Time
	Reason    *string
	CreatedBy string
}

// Create блокирует дату для зала или всего офиса
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.BlockedDate, error) {
	s.logger.Info("Create: office=%d, hall=%v, date=%s by=%s",
		req.OfficeID, req.HallID, req.Date.Format(domain.DateFormat), req.CreatedBy)

	if req.OfficeID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: office and date are required", ErrInvalidInput)
	}

	if req.HallID != nil {
		hall, err := s.hallRepo.GetByID(ctx, *req.HallID)
		if err != nil {
			if errors.Is(err, hallRepo.ErrHallNotFound) {
				return nil, ErrHallNotFound
			}
			s.logger.Error("Create: failed to get hall id=%d: %v", *req.HallID, err)
			return nil, fmt.Errorf("%w: Create - hall repository error: %v", ErrInternal, err)
		}
		if hall.OfficeID != req.OfficeID {
			s.logger.Warn("Create: hall id=%d belongs to office=%d, not %d", hall.ID, hall.OfficeID, req.OfficeID)
			return nil, ErrHallOfficeMismatch
		}
	}

	bd := &domain.BlockedDate{
		OfficeID:    req.OfficeID,
		HallID:      req.HallID,
		BlockedDate: req.Date,
		Reason:      req.Reason,
	}
	if req.CreatedBy != "" {
		bd.CreatedBy = &req.CreatedBy
	}

	var created *domain.BlockedDate
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsExact(txCtx, req.OfficeID, req.HallID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: Create - exists check: %v", ErrInternal, err)
		}
		if exists {
			return ErrAlreadyBlocked
		}

		created, err = s.repo.Create(txCtx, bd)
		if err != nil {
			if errors.Is(err, blockedDateRepo.ErrDuplicate) {
				return ErrAlreadyBlocked
			}
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyBlocked) {
			s.logger.Warn("Create: office=%d, hall=%v, date=%s already blocked",
				req.OfficeID, req.HallID, req.Date.Format(domain.DateFormat))
		} else {
			s.logger.Error("Create: %v", err)
		}
		return nil, err
	}

	s.logger.Info("Create: blocked date id=%d created", created.ID)
	return created, nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedDateRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Delete: blocked date id=%d not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Delete: blocked date id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked date id=%d removed", id)
	return nil
}

// List возвращает блокировки в диапазоне [start, end]; hallID == nil означает все залы
func (s *Service) List(ctx context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error) {
	if filter.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return items, nil
}
