// Package hall read-only доступ к справочнику залов
package hall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall.repository: hall not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hall.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hall.repository: failed to scan row")
)

// Repository репозиторий залов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает зал по ID (включая удаленные, решение принимает вызывающий)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"office_id",
		"hall_code",
		"hall_name",
		"category",
		"capacity",
		"wifi",
		"tv",
		"whiteboard",
		"speaker",
		"mic",
		"extension_power_box",
		"stationaries",
		"chairs_tables",
		"is_freeze",
		"is_deleted",
		"created_at",
		"updated_at",
	).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.Hall
	var officeID sql.NullInt64
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&officeID,
		&h.HallCode,
		&h.HallName,
		&h.Category,
		&h.Capacity,
		&h.Amenities.WiFi,
		&h.Amenities.TV,
		&h.Amenities.Whiteboard,
		&h.Amenities.Speaker,
		&h.Amenities.Mic,
		&h.Amenities.ExtensionPowerBox,
		&h.Amenities.Stationaries,
		&h.Amenities.ChairsTables,
		&h.IsFrozen,
		&h.IsDeleted,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hall: %v", ErrScanRow, err)
	}
	h.OfficeID = officeID.Int64

	return &h, nil
}

// Count считает неудаленные залы по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.HallFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("halls").
		Where(squirrel.Eq{"is_deleted": false})

	if filter.OfficeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"office_id": *filter.OfficeID})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Frozen != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_freeze": *filter.Frozen})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
