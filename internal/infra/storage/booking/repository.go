package booking

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

var columns = []string{
	"id",
	"book_date",
	"slot_date",
	"slot_time",
	"office_id",
	"hall_id",
	"session_id",
	"emp_code",
	"emp_name",
	"emp_email_id",
	"emp_mobile_no",
	"team_name",
	"shift",
	"it_support",
	"hr_support",
	"fin_support",
	"caf_support",
	"status",
	"approved",
	"description",
	"is_deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Поле approved всегда вычисляется из статуса.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if !booking.Status.IsValid() {
		return nil, fmt.Errorf("%w: Create - status %q", ErrInvalidStatus, booking.Status)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	booking.Approved = domain.ApprovedFor(booking.Status)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_date",
			"slot_time",
			"office_id",
			"hall_id",
			"session_id",
			"emp_code",
			"emp_name",
			"emp_email_id",
			"emp_mobile_no",
			"team_name",
			"shift",
			"it_support",
			"hr_support",
			"fin_support",
			"caf_support",
			"status",
			"approved",
			"description",
		).
		Values(
			booking.SlotDate,
			booking.SlotTime,
			booking.OfficeID,
			booking.HallID,
			booking.SessionID,
			booking.EmpCode,
			booking.EmpName,
			booking.EmpEmail,
			booking.EmpMobileNo,
			booking.TeamName,
			booking.Shift,
			booking.ITSupport,
			booking.HRSupport,
			booking.FinanceSupport,
			booking.CafeteriaSupport,
			booking.Status,
			booking.Approved,
			booking.Description,
		).
		Suffix("RETURNING id, book_date, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.BookDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает неудаленное бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "is_deleted": false})

	// Внутри транзакции блокируем строку до завершения перехода состояния
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает неудаленные бронирования, отсортированные по slot_date, slot_time
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(
		psqlbuilder.Select(columns...).From("bookings"),
		filter,
	).OrderBy("slot_date ASC", "slot_time ASC", "id ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Count считает неудаленные бронирования по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.BookingFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(
		psqlbuilder.Select("COUNT(*)").From("bookings"),
		filter,
	).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatus считает неудаленные бронирования по статусам.
// Статусы без бронирований присутствуют в результате с нулем.
func (r *Repository) CountByStatus(ctx context.Context, filter domain.BookingFilter) (domain.StatusCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(
		psqlbuilder.Select("status", "COUNT(*)").From("bookings"),
		filter,
	).GroupBy("status").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := domain.StatusCounts{
		domain.StatusPending:   0,
		domain.StatusApproved:  0,
		domain.StatusRejected:  0,
		domain.StatusCancelled: 0,
	}
	for rows.Next() {
		var status domain.BookingStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// UpdateStatus обновляет статус бронирования и производное поле approved
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: UpdateStatus - status %q", ErrInvalidStatus, status)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("approved", domain.ApprovedFor(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// SoftDelete помечает бронирование удаленным, статус не меняется
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("is_deleted", true).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SoftDelete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// applyFilter добавляет условия фильтра; удаленные бронирования исключаются всегда
func applyFilter(b squirrel.SelectBuilder, filter domain.BookingFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"is_deleted": false})

	if filter.EmpCode != nil {
		b = b.Where(squirrel.Eq{"emp_code": *filter.EmpCode})
	}
	if filter.EmpEmail != nil {
		b = b.Where(squirrel.Eq{"emp_email_id": *filter.EmpEmail})
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.FromDate != nil {
		b = b.Where(squirrel.GtOrEq{"slot_date": *filter.FromDate})
	}
	if filter.SlotDate != nil {
		b = b.Where(squirrel.Eq{"slot_date": *filter.SlotDate})
	}
	if filter.SlotTime != nil {
		b = b.Where(squirrel.Eq{"slot_time": *filter.SlotTime})
	}
	if filter.HallID != nil {
		b = b.Where(squirrel.Eq{"hall_id": *filter.HallID})
	}
	if filter.OfficeID != nil {
		b = b.Where(squirrel.Eq{"office_id": *filter.OfficeID})
	}
	if filter.SessionID != nil {
		b = b.Where(squirrel.Eq{"session_id": *filter.SessionID})
	}
	if filter.Category != nil {
		b = b.Where("hall_id IN (SELECT id FROM halls WHERE category = ?)", *filter.Category)
	}

	return b
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var description sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookDate,
		&booking.SlotDate,
		&booking.SlotTime,
		&booking.OfficeID,
		&booking.HallID,
		&booking.SessionID,
		&booking.EmpCode,
		&booking.EmpName,
		&booking.EmpEmail,
		&booking.EmpMobileNo,
		&booking.TeamName,
		&booking.Shift,
		&booking.ITSupport,
		&booking.HRSupport,
		&booking.FinanceSupport,
		&booking.CafeteriaSupport,
		&booking.Status,
		&booking.Approved,
		&description,
		&booking.IsDeleted,
		&deletedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		booking.Description = &description.String
	}
	if deletedAt.Valid {
		booking.DeletedAt = &deletedAt.Time
	}

	return &booking, nil
}
