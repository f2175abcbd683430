package slot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

func TestListAvailable_OrdersByteWise(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM slots WHERE hall_id = \$1 AND slot_date = \$2 AND slot_status = \$3 ORDER BY slot_date ASC, hall_id ASC, slot_time COLLATE "C" ASC`).
		WithArgs(int64(7), date, domain.SlotAvailable).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(7), date, "09:00-10:00", "Available", now, now).
			AddRow(int64(2), int64(7), date, "10:00-11:00", "Available", now, now))

	repo := NewRepository(db)
	slots, err := repo.ListAvailable(context.Background(), 7, date)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00-10:00", slots[0].TimeLabel)
	assert.Equal(t, domain.SlotAvailable, slots[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusByKey_MissingSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE slots SET slot_status = \$1, updated_at = NOW\(\) WHERE hall_id = \$2 AND slot_date = \$3 AND slot_time = \$4`).
		WithArgs(domain.SlotAvailable, int64(7), date, "09:00-10:00").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.SetStatusByKey(context.Background(),
		domain.SlotKey{HallID: 7, Date: date, TimeLabel: "09:00-10:00"}, domain.SlotAvailable)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
