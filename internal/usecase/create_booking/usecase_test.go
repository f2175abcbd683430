package create_booking

import (
	"context"
	"maps"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	sessionRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/slot"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type blockKey struct {
	officeID int64
	hallID   int64 // 0 blocks the whole office
	date     time.Time
}

// store in-memory state shared by the fakes; the tx manager restores it on error
type store struct {
	bookings map[int64]*domain.Booking
	slots    map[domain.SlotKey]domain.SlotStatus
	blocked  map[blockKey]bool
	halls    map[int64]*domain.Hall
	sessions map[int64]*domain.Session
	nextID   int64
}

func (s *store) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.nextID++
	b.ID = s.nextID
	cp := *b
	s.bookings[b.ID] = &cp
	return b, nil
}

func (s *store) GetByKey(_ context.Context, key domain.SlotKey) (*domain.Slot, error) {
	st, ok := s.slots[key]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return &domain.Slot{HallID: key.HallID, Date: key.Date, TimeLabel: key.TimeLabel, Status: st}, nil
}

func (s *store) SetStatusByKey(_ context.Context, key domain.SlotKey, status domain.SlotStatus) error {
	if _, ok := s.slots[key]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.slots[key] = status
	return nil
}

func (s *store) IsBlocked(_ context.Context, officeID, hallID int64, date time.Time) (bool, error) {
	return s.blocked[blockKey{officeID, hallID, date}] || s.blocked[blockKey{officeID, 0, date}], nil
}

func (s *store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	bookings := maps.Clone(s.bookings)
	slots := maps.Clone(s.slots)
	if err := fn(ctx); err != nil {
		s.bookings, s.slots = bookings, slots
		return err
	}
	return nil
}

type hallsOf struct{ s *store }

func (h hallsOf) GetByID(_ context.Context, id int64) (*domain.Hall, error) {
	hall, ok := h.s.halls[id]
	if !ok {
		return nil, hallRepo.ErrHallNotFound
	}
	return hall, nil
}

type sessionsOf struct{ s *store }

func (r sessionsOf) GetByID(_ context.Context, id int64) (*domain.Session, error) {
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return sess, nil
}

const (
	hallH    = int64(7)
	officeID = int64(2)
)

var (
	june3 = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	june4 = time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
)

func newStore() *store {
	return &store{
		bookings: map[int64]*domain.Booking{},
		slots: map[domain.SlotKey]domain.SlotStatus{
			{HallID: hallH, Date: june3, TimeLabel: "09:00-10:00"}: domain.SlotAvailable,
			{HallID: hallH, Date: june4, TimeLabel: "09:00-10:00"}: domain.SlotBooked,
		},
		blocked:  map[blockKey]bool{},
		halls:    map[int64]*domain.Hall{hallH: {ID: hallH, OfficeID: officeID, HallName: "Board Room"}},
		sessions: map[int64]*domain.Session{1: {ID: 1, SessionType: "Meeting"}},
	}
}

func newUseCase(s *store) *UseCase {
	return NewUseCase(s, s, hallsOf{s}, sessionsOf{s}, s, s, nopLogger{})
}

func request(date time.Time) *Request {
	return &Request{
		OfficeID:  officeID,
		HallID:    hallH,
		SessionID: 1,
		SlotDate:  date,
		SlotTime:  "09:00-10:00",
		EmpCode:   "E100",
		EmpName:   "Asha",
		EmpEmail:  "asha@vdartinc.com",
		Shift:     "Day",
	}
}

func TestExecute_BooksAvailableSlot(t *testing.T) {
	s := newStore()

	resp, err := newUseCase(s).Execute(context.Background(), request(june3))
	require.NoError(t, err)

	assert.Equal(t, "Pending", resp.Status)
	assert.False(t, resp.Approved)
	assert.Equal(t, "2024-06-03", resp.SlotDate)
	assert.Equal(t, domain.SlotBooked, s.slots[domain.SlotKey{HallID: hallH, Date: june3, TimeLabel: "09:00-10:00"}])
	require.Len(t, s.bookings, 1)
}

func TestExecute_BookedSlotConflicts(t *testing.T) {
	s := newStore()

	_, err := newUseCase(s).Execute(context.Background(), request(june4))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Empty(t, s.bookings)
}

func TestExecute_MissingSlotIsSkipped(t *testing.T) {
	s := newStore()
	req := request(june3)
	req.SlotTime = "18:00-19:00"

	resp, err := newUseCase(s).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "18:00-19:00", resp.SlotTime)
	assert.Len(t, s.slots, 2)
}

func TestExecute_BlockedDateLeavesNoTrace(t *testing.T) {
	tests := []struct {
		name  string
		block blockKey
	}{
		{name: "hall-specific", block: blockKey{officeID, hallH, june3}},
		{name: "office-wide", block: blockKey{officeID, 0, june3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore()
			s.blocked[tt.block] = true

			_, err := newUseCase(s).Execute(context.Background(), request(june3))
			assert.ErrorIs(t, err, ErrDateBlocked)
			assert.Empty(t, s.bookings)
			assert.Equal(t, domain.SlotAvailable, s.slots[domain.SlotKey{HallID: hallH, Date: june3, TimeLabel: "09:00-10:00"}])
		})
	}
}

func TestExecute_OtherOfficeBlockDoesNotApply(t *testing.T) {
	s := newStore()
	s.blocked[blockKey{officeID + 1, 0, june3}] = true

	_, err := newUseCase(s).Execute(context.Background(), request(june3))
	assert.NoError(t, err)
}

func TestExecute_HallChecks(t *testing.T) {
	t.Run("frozen", func(t *testing.T) {
		s := newStore()
		s.halls[hallH].IsFrozen = true
		_, err := newUseCase(s).Execute(context.Background(), request(june3))
		assert.ErrorIs(t, err, ErrHallUnavailable)
	})

	t.Run("unknown", func(t *testing.T) {
		req := request(june3)
		req.HallID = 99
		_, err := newUseCase(newStore()).Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrHallNotFound)
	})

	t.Run("office mismatch", func(t *testing.T) {
		req := request(june3)
		req.OfficeID = officeID + 1
		_, err := newUseCase(newStore()).Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOfficeMismatch)
	})

	t.Run("office defaults to hall office", func(t *testing.T) {
		req := request(june3)
		req.OfficeID = 0
		resp, err := newUseCase(newStore()).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, officeID, resp.OfficeID)
	})
}

func TestExecute_SessionNotFound(t *testing.T) {
	req := request(june3)
	req.SessionID = 5

	_, err := newUseCase(newStore()).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no slot time", mutate: func(r *Request) { r.SlotTime = "  " }},
		{name: "no date", mutate: func(r *Request) { r.SlotDate = time.Time{} }},
		{name: "bad email", mutate: func(r *Request) { r.EmpEmail = "asha" }},
		{name: "bad shift", mutate: func(r *Request) { r.Shift = "Evening" }},
		{name: "no emp code", mutate: func(r *Request) { r.EmpCode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request(june3)
			tt.mutate(req)
			_, err := newUseCase(newStore()).Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
