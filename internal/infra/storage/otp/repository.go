// Package otp хранилище одноразовых кодов подтверждения email
package otp

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

var (
	// ErrOTPNotFound возвращается, когда пары (email, code) нет
	ErrOTPNotFound = errors.New("otp.repository: otp not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("otp.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("otp.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("otp.repository: failed to scan row")
)

// Repository репозиторий OTP
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория OTP
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый код
func (r *Repository) Create(ctx context.Context, otp *domain.EmailOTP) (*domain.EmailOTP, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("email_otps").
		Columns("email", "otp", "created_at").
		Values(otp.Email, otp.Code, otp.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&otp.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return otp, nil
}

// Find ищет последний код для пары (email, code)
func (r *Repository) Find(ctx context.Context, email, code string) (*domain.EmailOTP, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "otp", "created_at").
		From("email_otps").
		Where(squirrel.Eq{"email": email, "otp": code}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Find - build select query: %v", ErrBuildQuery, err)
	}

	var otp domain.EmailOTP
	err = executor.QueryRowContext(ctx, query, args...).Scan(&otp.ID, &otp.Email, &otp.Code, &otp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOTPNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Find - scan otp: %v", ErrScanRow, err)
	}

	return &otp, nil
}

// DeleteByEmail удаляет все коды для email
func (r *Repository) DeleteByEmail(ctx context.Context, email string) error {
	return r.delete(ctx, "DeleteByEmail", squirrel.Eq{"email": email})
}

// DeleteByID удаляет код по ID
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteByID", squirrel.Eq{"id": id})
}

// DeleteCreatedBefore удаляет коды, созданные раньше cutoff, и возвращает их количество
func (r *Repository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("email_otps").
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteCreatedBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteCreatedBefore - execute delete: %v", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteCreatedBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return n, nil
}

func (r *Repository) delete(ctx context.Context, op string, cond squirrel.Sqlizer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("email_otps").Where(cond).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	return nil
}
