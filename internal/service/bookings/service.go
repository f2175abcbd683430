package bookings

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/booking"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	slotRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
)

// ErrHallNotFound возвращается, когда зал не найден
var ErrHallNotFound = errors.New("hall not found")

const (
	transitionApprove = "approve"
	transitionReject  = "reject"
	transitionCancel  = "cancel"
	transitionDelete  = "delete"
)

// Service сервис для работы с бронированиями: переходы состояний и чтение
type Service struct {
	bookingRepo     BookingRepository
	slotRepo        SlotRepository
	hallRepo        HallRepository
	suggestions     SuggestionEngine
	dispatcher      Dispatcher
	txManager       TransactionManager
	observer        TransitionObserver
	location        *time.Location
	suggestionCount int
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	hallRepo HallRepository,
	suggestions SuggestionEngine,
	dispatcher Dispatcher,
	txManager TransactionManager,
	observer TransitionObserver,
	location *time.Location,
	suggestionCount int,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	if suggestionCount <= 0 {
		suggestionCount = domain.DefaultSuggestionCount
	}
	return &Service{
		bookingRepo:     bookingRepo,
		slotRepo:        slotRepo,
		hallRepo:        hallRepo,
		suggestions:     suggestions,
		dispatcher:      dispatcher,
		txManager:       txManager,
		observer:        observer,
		location:        location,
		suggestionCount: suggestionCount,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID. Удаленные бронирования не возвращаются.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// Approve подтверждает бронирование.
// Переход разрешен из любого статуса, слот не меняется.
// Письмо-подтверждение отправляется после коммита, его ошибка не влияет на результат.
func (s *Service) Approve(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Approve: approving booking id=%d", id)

	var booking *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getBooking(txCtx, "Approve", id)
		if err != nil {
			return err
		}
		return s.updateStatus(txCtx, "Approve", booking, domain.StatusApproved)
	})
	s.observe(transitionApprove, err)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, booking, domain.NotificationConfirmation, "", nil)

	s.logger.Info("Approve: booking id=%d approved", id)
	return models.FromDomainBooking(booking), nil
}

// Reject отклоняет бронирование и освобождает слот.
// Альтернативные слоты подбираются до освобождения, поэтому отклоненный слот в них не попадает.
func (s *Service) Reject(ctx context.Context, id int64, reason string) (*models.RejectResponse, error) {
	reason = strings.TrimSpace(reason)
	s.logger.Info("Reject: rejecting booking id=%d, reason=%q", id, reason)

	var (
		booking   *domain.Booking
		suggested []domain.SuggestedSlot
	)
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getBooking(txCtx, "Reject", id)
		if err != nil {
			return err
		}

		suggested, err = s.suggestions.Suggest(txCtx, booking.HallID, s.suggestionCount)
		if err != nil {
			s.logger.Error("Reject: failed to suggest slots for hall=%d: %v", booking.HallID, err)
			return fmt.Errorf("%w: Reject - suggestions: %v", ErrInternal, err)
		}

		if err := s.updateStatus(txCtx, "Reject", booking, domain.StatusRejected); err != nil {
			return err
		}
		return s.releaseSlot(txCtx, "Reject", booking)
	})
	s.observe(transitionReject, err)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, booking, domain.NotificationRejection, reason, suggested)

	s.logger.Info("Reject: booking id=%d rejected, %d slots suggested", id, len(suggested))
	return &models.RejectResponse{
		BookingResponse: *models.FromDomainBooking(booking),
		SuggestedSlots:  models.FromSuggestedSlots(suggested),
	}, nil
}

// Cancel отменяет бронирование и освобождает слот. Уведомление не отправляется.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	var booking *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getBooking(txCtx, "Cancel", id)
		if err != nil {
			return err
		}
		if err := s.updateStatus(txCtx, "Cancel", booking, domain.StatusCancelled); err != nil {
			return err
		}
		return s.releaseSlot(txCtx, "Cancel", booking)
	})
	s.observe(transitionCancel, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return models.FromDomainBooking(booking), nil
}

// Delete мягко удаляет бронирование и освобождает слот. Статус не меняется.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Delete", id)
		if err != nil {
			return err
		}

		if err := s.bookingRepo.SoftDelete(txCtx, id); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return s.releaseSlot(txCtx, "Delete", booking)
	})
	s.observe(transitionDelete, err)
	if err != nil {
		return err
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

// Stats возвращает количество бронирований по статусам
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	counts, err := s.bookingRepo.CountByStatus(ctx, domain.BookingFilter{})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		Pending:  counts[domain.StatusPending],
		Approved: counts[domain.StatusApproved],
		Rejected: counts[domain.StatusRejected],
	}, nil
}

// Upcoming возвращает бронирования начиная с сегодняшнего дня
func (s *Service) Upcoming(ctx context.Context) ([]models.BookingResponse, error) {
	today := s.today()
	return s.list(ctx, "Upcoming", domain.BookingFilter{FromDate: &today})
}

// ByEmployee возвращает бронирования сотрудника по коду
func (s *Service) ByEmployee(ctx context.Context, empCode string) ([]models.BookingResponse, error) {
	if empCode == "" {
		return nil, fmt.Errorf("%w: emp_code is required", ErrInvalidInput)
	}
	return s.list(ctx, "ByEmployee", domain.BookingFilter{EmpCode: &empCode})
}

// ByEmail возвращает бронирования по email сотрудника
func (s *Service) ByEmail(ctx context.Context, email string) ([]models.BookingResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: emp_email is required", ErrInvalidInput)
	}
	return s.list(ctx, "ByEmail", domain.BookingFilter{EmpEmail: &email})
}

// PendingApprovals возвращает бронирования, ожидающие решения администратора
func (s *Service) PendingApprovals(ctx context.Context) ([]models.BookingResponse, error) {
	status := domain.StatusPending
	return s.list(ctx, "PendingApprovals", domain.BookingFilter{Status: &status})
}

// HallBookedSlots возвращает занятые временные метки зала на дату со статусами бронирований
func (s *Service) HallBookedSlots(ctx context.Context, hallID int64, date time.Time) ([]models.BookedSlotResponse, error) {
	if _, err := s.hallRepo.GetByID(ctx, hallID); err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("HallBookedSlots: hall id=%d not found", hallID)
			return nil, ErrHallNotFound
		}
		s.logger.Error("HallBookedSlots: hall repository error for id=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: HallBookedSlots - hall repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{HallID: &hallID, SlotDate: &date})
	if err != nil {
		s.logger.Error("HallBookedSlots: repository error for hall=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: HallBookedSlots - repository error: %v", ErrInternal, err)
	}

	slots := make([]domain.BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, domain.BookedSlot{SlotTime: b.SlotTime, Status: b.Status})
	}
	return models.FromBookedSlots(slots), nil
}

// HallBookings возвращает все неудаленные бронирования зала
func (s *Service) HallBookings(ctx context.Context, hallID int64) ([]models.BookingResponse, error) {
	if _, err := s.hallRepo.GetByID(ctx, hallID); err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("HallBookings: hall id=%d not found", hallID)
			return nil, ErrHallNotFound
		}
		s.logger.Error("HallBookings: hall repository error for id=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: HallBookings - hall repository error: %v", ErrInternal, err)
	}

	return s.list(ctx, "HallBookings", domain.BookingFilter{HallID: &hallID})
}

// CurrentWorkingHalls возвращает залы с одобренным бронированием на текущий получасовой слот.
// Слот вычисляется в часовом поясе сервиса, результат отсортирован по названию зала.
func (s *Service) CurrentWorkingHalls(ctx context.Context) ([]models.WorkingHallResponse, error) {
	now := s.timeProvider.Now().In(s.location)
	today := s.today()
	label := domain.CurrentSlotLabel(now)
	approved := domain.StatusApproved

	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		Status:   &approved,
		SlotDate: &today,
		SlotTime: &label,
	})
	if err != nil {
		s.logger.Error("CurrentWorkingHalls: repository error: %v", err)
		return nil, fmt.Errorf("%w: CurrentWorkingHalls - repository error: %v", ErrInternal, err)
	}

	halls := make([]models.WorkingHallResponse, 0, len(bookings))
	for _, b := range bookings {
		halls = append(halls, models.WorkingHallResponse{
			HallID:   b.HallID,
			HallName: s.hallName(ctx, b.HallID),
			TeamName: b.TeamName,
			SlotTime: b.SlotTime,
			EmpName:  b.EmpName,
		})
	}
	slices.SortStableFunc(halls, func(a, b models.WorkingHallResponse) int {
		return strings.Compare(a.HallName, b.HallName)
	})

	s.logger.Info("CurrentWorkingHalls: %d halls in use for slot %q", len(halls), label)
	return halls, nil
}

// Dashboard собирает сводку для администратора.
// Все чтения выполняются в одной read-only транзакции.
func (s *Service) Dashboard(ctx context.Context, filter domain.DashboardFilter) (*models.DashboardResponse, error) {
	today := s.today()
	approved := domain.StatusApproved

	bookingFilter := domain.BookingFilter{
		OfficeID:  filter.OfficeID,
		SlotDate:  filter.SlotDate,
		Category:  filter.Category,
		SessionID: filter.SessionID,
	}
	upcomingFilter := bookingFilter
	upcomingFilter.Status = &approved
	upcomingFilter.FromDate = &today

	hallFilter := domain.HallFilter{OfficeID: filter.OfficeID, Category: filter.Category}
	notFrozen, frozen := false, true

	stats := &domain.DashboardStats{}
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if stats.TotalHalls, err = s.hallRepo.Count(txCtx, hallFilter); err != nil {
			return err
		}

		available := hallFilter
		available.Frozen = &notFrozen
		if stats.AvailableHalls, err = s.hallRepo.Count(txCtx, available); err != nil {
			return err
		}

		working := hallFilter
		working.Frozen = &frozen
		if stats.FrozenHalls, err = s.hallRepo.Count(txCtx, working); err != nil {
			return err
		}

		if stats.UpcomingBookedHalls, err = s.bookingRepo.Count(txCtx, upcomingFilter); err != nil {
			return err
		}

		counts, err := s.bookingRepo.CountByStatus(txCtx, bookingFilter)
		if err != nil {
			return err
		}
		stats.Pending = counts[domain.StatusPending]
		stats.Approved = counts[domain.StatusApproved]
		stats.Rejected = counts[domain.StatusRejected]
		stats.Cancelled = counts[domain.StatusCancelled]

		upcomingFilter.Limit = domain.DashboardUpcomingLimit
		stats.UpcomingBookings, err = s.bookingRepo.List(txCtx, upcomingFilter)
		return err
	})
	if err != nil {
		s.logger.Error("Dashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	return models.FromDashboardStats(stats), nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingFilter) ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: fetched %d bookings", op, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// updateStatus сохраняет статус и синхронизирует поле approved в памяти
func (s *Service) updateStatus(ctx context.Context, op string, booking *domain.Booking, status domain.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("%s: failed to update status of booking id=%d: %v", op, booking.ID, err)
		return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
	}

	booking.SetStatus(status)
	booking.UpdatedAt = s.timeProvider.Now()
	return nil
}

// releaseSlot возвращает слот бронирования в Available. Отсутствующий слот пропускается.
func (s *Service) releaseSlot(ctx context.Context, op string, booking *domain.Booking) error {
	err := s.slotRepo.SetStatusByKey(ctx, booking.SlotKey(), domain.SlotAvailable)
	if err == nil {
		return nil
	}
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		s.logger.Warn("%s: no slot for hall=%d date=%s time=%q, skipping",
			op, booking.HallID, booking.SlotDate.Format(domain.DateFormat), booking.SlotTime)
		return nil
	}

	s.logger.Error("%s: failed to release slot of booking id=%d: %v", op, booking.ID, err)
	return fmt.Errorf("%w: %s - release slot: %v", ErrInternal, op, err)
}

// notify отправляет уведомление. Ошибки только логируются.
func (s *Service) notify(ctx context.Context, booking *domain.Booking, kind domain.NotificationKind, reason string, suggested []domain.SuggestedSlot) {
	if s.dispatcher == nil {
		return
	}

	n := domain.BookingNotification{
		Kind:        kind,
		BookingID:   booking.ID,
		EmpName:     booking.EmpName,
		EmpEmail:    booking.EmpEmail,
		HallName:    s.hallName(ctx, booking.HallID),
		SlotDate:    booking.SlotDate,
		SlotTime:    booking.SlotTime,
		Reason:      reason,
		Suggestions: suggested,
	}

	if err := s.dispatcher.Dispatch(ctx, n); err != nil {
		s.logger.Warn("notify: failed to dispatch %s for booking id=%d: %v", kind, booking.ID, err)
		return
	}
	s.logger.Info("notify: %s for booking id=%d dispatched to %s", kind, booking.ID, booking.EmpEmail)
}

func (s *Service) hallName(ctx context.Context, hallID int64) string {
	hall, err := s.hallRepo.GetByID(ctx, hallID)
	if err != nil || hall.HallName == "" {
		if err != nil {
			s.logger.Warn("hallName: failed to load hall id=%d: %v", hallID, err)
		}
		return fmt.Sprintf("Hall #%d", hallID)
	}
	return hall.HallName
}

func (s *Service) observe(transition string, err error) {
	if s.observer != nil {
		s.observer.ObserveTransition(transition, err)
	}
}

// today текущая дата в часовом поясе сервиса как полночь UTC
func (s *Service) today() time.Time {
	y, m, d := s.timeProvider.Now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
