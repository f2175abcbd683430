package blockeddate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var columns = []string{"id", "office_id", "hall_id", "blocked_date", "reason", "created_by", "created_at", "updated_at"}

// Repository репозиторий заблокированных дат
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет, есть ли блокировка для конкретного зала или для всего офиса на дату
func (r *Repository) Exists(ctx context.Context, officeID, hallID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_dates").
		Where(squirrel.Eq{"office_id": officeID, "blocked_date": date}).
		Where(squirrel.Or{
			squirrel.Eq{"hall_id": hallID},
			squirrel.Eq{"hall_id": nil},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// Create создает блокировку даты
func (r *Repository) Create(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("office_id", "hall_id", "blocked_date", "reason", "created_by").
		Values(bd.OfficeID, bd.HallID, bd.BlockedDate, bd.Reason, bd.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&bd.ID, &bd.CreatedAt, &bd.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return bd, nil
}

// ExistsExact проверяет наличие записи с точно таким же (office, hall, date).
// NULL-зал в PostgreSQL не участвует в уникальном индексе, поэтому проверка нужна явно.
func (r *Repository) ExistsExact(ctx context.Context, officeID int64, hallID *int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_dates").
		Where(squirrel.Eq{"office_id": officeID, "blocked_date": date, "hall_id": hallID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsExact - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsExact - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

// List возвращает блокировки в диапазоне дат
func (r *Repository) List(ctx context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("blocked_dates").
		Where(squirrel.GtOrEq{"blocked_date": filter.StartDate})

	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"blocked_date": *filter.EndDate})
	}
	if filter.HallID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"hall_id": *filter.HallID})
	}

	query, args, err := selectBuilder.OrderBy("blocked_date ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var bd domain.BlockedDate
		var hallID sql.NullInt64
		var reason, createdBy sql.NullString

		if err := rows.Scan(
			&bd.ID,
			&bd.OfficeID,
			&hallID,
			&bd.BlockedDate,
			&reason,
			&createdBy,
			&bd.CreatedAt,
			&bd.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if hallID.Valid {
			bd.HallID = &hallID.Int64
		}
		if reason.Valid {
			bd.Reason = &reason.String
		}
		if createdBy.Valid {
			bd.CreatedBy = &createdBy.String
		}
		result = append(result, &bd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
