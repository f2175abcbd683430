package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

var columns = []string{"id", "hall_id", "slot_date", "slot_time", "slot_status", "created_at", "updated_at"}

// Метки времени сравниваются побайтово независимо от локали БД
const orderByTimeLabel = `slot_time COLLATE "C" ASC`

// Repository реестр слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey ищет слот по (hall, date, time-label).
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByKey(ctx context.Context, key domain.SlotKey) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{
			"hall_id":   key.HallID,
			"slot_date": key.Date,
			"slot_time": key.TimeLabel,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// SetStatusByKey меняет статус слота по ключу.
// Если слота нет, возвращает ErrSlotNotFound.
func (r *Repository) SetStatusByKey(ctx context.Context, key domain.SlotKey, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("slot_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"hall_id":   key.HallID,
			"slot_date": key.Date,
			"slot_time": key.TimeLabel,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatusByKey - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "SetStatusByKey", query, args)
}

// SetStatus меняет статус слота по ID
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("slot_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "SetStatus", query, args)
}

// ListAvailable возвращает свободные слоты зала на дату, отсортированные по метке времени
func (r *Repository) ListAvailable(ctx context.Context, hallID int64, date time.Time) ([]*domain.Slot, error) {
	return r.list(ctx, "ListAvailable", squirrel.Eq{
		"hall_id":     hallID,
		"slot_date":   date,
		"slot_status": domain.SlotAvailable,
	})
}

// ListAvailableByDate возвращает свободные слоты на дату, опционально по залу.
// Без даты возвращает все свободные слоты.
func (r *Repository) ListAvailableByDate(ctx context.Context, date *time.Time, hallID *int64) ([]*domain.Slot, error) {
	cond := squirrel.Eq{"slot_status": domain.SlotAvailable}
	if date != nil {
		cond["slot_date"] = *date
	}
	if hallID != nil {
		cond["hall_id"] = *hallID
	}
	return r.list(ctx, "ListAvailableByDate", cond)
}

func (r *Repository) list(ctx context.Context, op string, cond squirrel.Eq) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("slots").
		Where(cond).
		OrderBy("slot_date ASC", "hall_id ASC", orderByTimeLabel).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return slots, nil
}

func execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	err := row.Scan(
		&slot.ID,
		&slot.HallID,
		&slot.Date,
		&slot.TimeLabel,
		&slot.Status,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
