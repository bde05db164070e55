package off_day

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

const (
	table = "business_off_days"

	pqUniqueViolation = "23505"
)

var columns = []string{"id", "date", "reason", "created_at"}

// Repository репозиторий выходных дней салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListInRange возвращает выходные дни в диапазоне [from, to] включительно.
// Даты передаются строкой YYYY-MM-DD, чтобы часовой пояс сессии не сдвигал день.
func (r *Repository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.OffDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offDays := make([]domain.OffDay, 0)
	for rows.Next() {
		offDay, err := scanOffDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan row: %v", ErrScanRow, err)
		}
		offDays = append(offDays, *offDay)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows error: %v", ErrScanRow, err)
	}

	return offDays, nil
}

// Create создает выходной день
func (r *Repository) Create(ctx context.Context, offDay *domain.OffDay) (*domain.OffDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("date", "reason").
		Values(offDay.DateKey(), offDay.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&offDay.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrOffDayAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	offDay.CreatedAt = createdAt.Time
	return offDay, nil
}

// GetByID получает выходной день по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.OffDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	offDay, err := scanOffDay(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOffDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan off-day: %v", ErrScanRow, err)
	}

	return offDay, nil
}

// Delete удаляет выходной день
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
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
		return ErrOffDayNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOffDay(row rowScanner) (*domain.OffDay, error) {
	var offDay domain.OffDay
	var reason sql.NullString
	var createdAt sql.NullTime

	if err := row.Scan(&offDay.ID, &offDay.Date, &reason, &createdAt); err != nil {
		return nil, err
	}

	if reason.Valid {
		offDay.Reason = &reason.String
	}
	offDay.CreatedAt = createdAt.Time

	return &offDay, nil
}
