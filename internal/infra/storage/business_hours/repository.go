package business_hours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

const table = "business_hours"

// Repository репозиторий часов работы салона (одна строка на день недели)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все дни недели, отсортированные по day_of_week
func (r *Repository) GetAll(ctx context.Context) ([]domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "is_open", "open_time", "close_time", "updated_at").
		From(table).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.BusinessHours, 0, 7)
	for rows.Next() {
		var h domain.BusinessHours
		var updatedAt sql.NullTime

		if err := rows.Scan(&h.DayOfWeek, &h.IsOpen, &h.OpenTime, &h.CloseTime, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		h.UpdatedAt = updatedAt.Time
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Upsert сохраняет часы работы одного дня недели
func (r *Repository) Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("day_of_week", "is_open", "open_time", "close_time").
		Values(hours.DayOfWeek, hours.IsOpen, hours.OpenTime, hours.CloseTime).
		Suffix("ON CONFLICT (day_of_week) DO UPDATE SET " +
			"is_open = EXCLUDED.is_open, " +
			"open_time = EXCLUDED.open_time, " +
			"close_time = EXCLUDED.close_time, " +
			"updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	hours.UpdatedAt = updatedAt.Time
	return hours, nil
}

// SeedDefaults заполняет отсутствующие дни расписанием по умолчанию.
// Существующие строки не меняются.
func (r *Repository) SeedDefaults(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert(table).Columns("day_of_week", "is_open", "open_time", "close_time")
	for _, h := range domain.DefaultBusinessHours() {
		insert = insert.Values(h.DayOfWeek, h.IsOpen, h.OpenTime, h.CloseTime)
	}

	query, args, err := insert.Suffix("ON CONFLICT (day_of_week) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: SeedDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SeedDefaults - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
