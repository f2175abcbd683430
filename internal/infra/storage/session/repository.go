// Package session read-only доступ к справочнику сессий
package session

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
	// ErrSessionNotFound возвращается, когда сессия не найдена или удалена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)

// Repository репозиторий сессий
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает неудаленную сессию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"session_code",
		"session_type",
		"preferred_hall_1",
		"preferred_hall_2",
		"preferred_hall_3",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Session
	var preferred [domain.MaxPreferredHalls]sql.NullInt64
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SessionCode,
		&s.SessionType,
		&preferred[0],
		&preferred[1],
		&preferred[2],
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	// Порядок preferred_hall_N задает ранг предпочтения
	for _, p := range preferred {
		if p.Valid {
			s.PreferredHallIDs = append(s.PreferredHallIDs, p.Int64)
		}
	}

	return &s, nil
}
