package blockeddate

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/ptr"
)

func TestExists_MatchesHallOrOfficeWide(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT 1 FROM blocked_dates WHERE blocked_date = \$1 AND office_id = \$2 AND \(hall_id = \$3 OR hall_id IS NULL\) LIMIT 1`).
		WithArgs(date, int64(1), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	repo := NewRepository(db)
	blocked, err := repo.Exists(context.Background(), 1, 9, date)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestExists_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM blocked_dates`).WillReturnError(sql.ErrNoRows)

	repo := NewRepository(db)
	blocked, err := repo.Exists(context.Background(), 1, 9, time.Now())
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestCreate_UniqueViolationMapsToDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO blocked_dates`).
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), &domain.BlockedDate{
		OfficeID:    1,
		HallID:      ptr.Ptr(int64(9)),
		BlockedDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM blocked_dates WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrBlockedDateNotFound)
}
