package blockeddates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	blockedDateRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/blockeddate"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	"github.com/m04kA/SMC-HallBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passTx struct{}

func (passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo хранит блокировки в памяти с той же семантикой совпадения, что и SQL
type fakeRepo struct {
	items     []*domain.BlockedDate
	nextID    int64
	createErr error
	listErr   error
	gotFilter domain.BlockedDateFilter
}

func (f *fakeRepo) Exists(_ context.Context, officeID, hallID int64, date time.Time) (bool, error) {
	for _, b := range f.items {
		if b.OfficeID != officeID || !b.BlockedDate.Equal(date) {
			continue
		}
		if b.HallID == nil || *b.HallID == hallID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ExistsExact(_ context.Context, officeID int64, hallID *int64, date time.Time) (bool, error) {
	for _, b := range f.items {
		if b.OfficeID == officeID && b.BlockedDate.Equal(date) && ptr.Value(b.HallID) == ptr.Value(hallID) &&
			(b.HallID == nil) == (hallID == nil) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(_ context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	bd.ID = f.nextID
	f.items = append(f.items, bd)
	return bd, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	for i, b := range f.items {
		if b.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return blockedDateRepo.ErrBlockedDateNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error) {
	f.gotFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

type fakeHalls map[int64]*domain.Hall

func (f fakeHalls) GetByID(_ context.Context, id int64) (*domain.Hall, error) {
	h, ok := f[id]
	if !ok {
		return nil, hallRepo.ErrHallNotFound
	}
	return h, nil
}

const (
	officeID = int64(2)
	hallH    = int64(7)
)

var june3 = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func newService(repo *fakeRepo) *Service {
	halls := fakeHalls{hallH: {ID: hallH, OfficeID: officeID}}
	return NewService(repo, halls, passTx{}, nopLogger{})
}

func TestIsBlocked(t *testing.T) {
	tests := []struct {
		name   string
		items  []*domain.BlockedDate
		hallID int64
		want   bool
	}{
		{
			name:   "hall-specific",
			items:  []*domain.BlockedDate{{OfficeID: officeID, HallID: ptr.Ptr(hallH), BlockedDate: june3}},
			hallID: hallH,
			want:   true,
		},
		{
			name:   "office-wide",
			items:  []*domain.BlockedDate{{OfficeID: officeID, BlockedDate: june3}},
			hallID: hallH,
			want:   true,
		},
		{
			name:   "other hall",
			items:  []*domain.BlockedDate{{OfficeID: officeID, HallID: ptr.Ptr(int64(8)), BlockedDate: june3}},
			hallID: hallH,
			want:   false,
		},
		{
			name:   "other office",
			items:  []*domain.BlockedDate{{OfficeID: officeID + 1, BlockedDate: june3}},
			hallID: hallH,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeRepo{items: tt.items})

			got, err := svc.IsBlocked(context.Background(), officeID, tt.hallID, june3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreate(t *testing.T) {
	t.Run("hall-specific", func(t *testing.T) {
		repo := &fakeRepo{}
		created, err := newService(repo).Create(context.Background(), &CreateRequest{
			OfficeID:  officeID,
			HallID:    ptr.Ptr(hallH),
			Date:      june3,
			Reason:    ptr.Ptr("maintenance"),
			CreatedBy: "ADM01",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "ADM01", ptr.Value(created.CreatedBy))
		assert.Len(t, repo.items, 1)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := &fakeRepo{items: []*domain.BlockedDate{{ID: 1, OfficeID: officeID, BlockedDate: june3}}}
		_, err := newService(repo).Create(context.Background(), &CreateRequest{OfficeID: officeID, Date: june3})
		assert.ErrorIs(t, err, ErrAlreadyBlocked)
		assert.Len(t, repo.items, 1)
	})

	t.Run("office-wide does not collide with hall entry", func(t *testing.T) {
		repo := &fakeRepo{items: []*domain.BlockedDate{{ID: 1, OfficeID: officeID, HallID: ptr.Ptr(hallH), BlockedDate: june3}}}
		_, err := newService(repo).Create(context.Background(), &CreateRequest{OfficeID: officeID, Date: june3})
		assert.NoError(t, err)
	})

	t.Run("unique violation from database", func(t *testing.T) {
		repo := &fakeRepo{createErr: blockedDateRepo.ErrDuplicate}
		_, err := newService(repo).Create(context.Background(), &CreateRequest{OfficeID: officeID, Date: june3})
		assert.ErrorIs(t, err, ErrAlreadyBlocked)
	})

	t.Run("hall of another office", func(t *testing.T) {
		_, err := newService(&fakeRepo{}).Create(context.Background(), &CreateRequest{
			OfficeID: officeID + 1,
			HallID:   ptr.Ptr(hallH),
			Date:     june3,
		})
		assert.ErrorIs(t, err, ErrHallOfficeMismatch)
	})

	t.Run("unknown hall", func(t *testing.T) {
		_, err := newService(&fakeRepo{}).Create(context.Background(), &CreateRequest{
			OfficeID: officeID,
			HallID:   ptr.Ptr(int64(99)),
			Date:     june3,
		})
		assert.ErrorIs(t, err, ErrHallNotFound)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := newService(&fakeRepo{}).Create(context.Background(), &CreateRequest{OfficeID: officeID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{items: []*domain.BlockedDate{{ID: 4, OfficeID: officeID, BlockedDate: june3}}}
	svc := newService(repo)

	require.NoError(t, svc.Delete(context.Background(), 4))
	assert.Empty(t, repo.items)
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), ErrBlockedDateNotFound)
}

func TestList(t *testing.T) {
	t.Run("start date required", func(t *testing.T) {
		_, err := newService(&fakeRepo{}).List(context.Background(), domain.BlockedDateFilter{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("passes filter through", func(t *testing.T) {
		repo := &fakeRepo{}
		filter := domain.BlockedDateFilter{StartDate: june3, HallID: ptr.Ptr(hallH)}

		_, err := newService(repo).List(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, filter, repo.gotFilter)
	})

	t.Run("repository error", func(t *testing.T) {
		_, err := newService(&fakeRepo{listErr: errors.New("boom")}).List(context.Background(),
			domain.BlockedDateFilter{StartDate: june3})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
