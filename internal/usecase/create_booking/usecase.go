package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	sessionRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	hallRepo    HallRepository
	sessionRepo SessionRepository
	guard       BlockedDateGuard
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	hallRepo HallRepository,
	sessionRepo SessionRepository,
	guard BlockedDateGuard,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		hallRepo:    hallRepo,
		sessionRepo: sessionRepo,
		guard:       guard,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает бронирование в статусе Pending и занимает соответствующий слот.
// Проверка блокировки, вставка и смена статуса слота выполняются в одной
// сериализуемой транзакции; строка слота блокируется на время проверки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: hall=%d, session=%d, date=%s, time=%q, emp=%s",
		req.HallID, req.SessionID, req.SlotDate.Format(domain.DateFormat), req.SlotTime, req.EmpCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Зал должен существовать, быть активным и принадлежать офису
	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}
	if !hall.IsBookable() {
		uc.logger.Warn("CreateBooking: hall id=%d is frozen or deleted", hall.ID)
		return nil, ErrHallUnavailable
	}

	officeID := req.OfficeID
	if officeID == 0 {
		officeID = hall.OfficeID
	}
	if officeID != hall.OfficeID {
		uc.logger.Warn("CreateBooking: hall id=%d belongs to office=%d, requested office=%d",
			hall.ID, hall.OfficeID, officeID)
		return nil, ErrOfficeMismatch
	}

	// 3. Сессия
	if _, err := uc.sessionRepo.GetByID(ctx, req.SessionID); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("CreateBooking: session id=%d not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateBooking: failed to get session id=%d: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	booking := toDomainBooking(req, officeID)
	key := booking.SlotKey()

	// 4. Проверка блокировки, вставка и занятие слота в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		blocked, err := uc.guard.IsBlocked(txCtx, officeID, hall.ID, booking.SlotDate)
		if err != nil {
			return fmt.Errorf("%w: blocked date check: %v", ErrInternal, err)
		}
		if blocked {
			return ErrDateBlocked
		}

		slot, err := uc.slotRepo.GetByKey(txCtx, key)
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			slot = nil
		case err != nil:
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		case !slot.IsAvailable():
			return ErrSlotAlreadyBooked
		}

		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if slot == nil {
			uc.logger.Warn("CreateBooking: no slot for hall=%d date=%s time=%q, skipping slot update",
				key.HallID, key.Date.Format(domain.DateFormat), key.TimeLabel)
			return nil
		}

		if err := uc.slotRepo.SetStatusByKey(txCtx, key, domain.SlotBooked); err != nil {
			return fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDateBlocked):
			uc.logger.Warn("CreateBooking: hall=%d is blocked on %s", hall.ID, booking.SlotDate.Format(domain.DateFormat))
		case errors.Is(err, ErrSlotAlreadyBooked):
			uc.logger.Warn("CreateBooking: slot hall=%d date=%s time=%q is already booked",
				key.HallID, key.Date.Format(domain.DateFormat), key.TimeLabel)
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for hall=%d", booking.ID, booking.HallID)
	return models.FromDomainBooking(booking), nil
}
