package scheduling_config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

const table = "scheduling_config"

var columns = []string{
	"id",
	"staff_id",
	"service_id",
	"step_minutes",
	"horizon_days",
	"min_lead_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий параметров сетки слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByScope получает конфигурацию ровно для пары (staffID, serviceID), nil означает NULL
func (r *Repository) GetByScope(ctx context.Context, staffID *int64, serviceID *int64) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(scopeFilter(staffID, serviceID)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - build select query: %v", ErrBuildQuery, err)
	}

	cfg, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - scan config: %v", ErrScanRow, err)
	}

	return cfg, nil
}

// GetWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Мастер + услуга (staffID, serviceID)
// 2. Услуга у всех мастеров (NULL, serviceID)
// 3. Мастер для всех услуг (staffID, NULL)
// 4. Глобальная конфигурация (NULL, NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetWithHierarchy(ctx context.Context, staffID *int64, serviceID *int64) (*domain.SchedulingConfig, error) {
	type level struct {
		name      string
		staffID   *int64
		serviceID *int64
	}

	levels := make([]level, 0, 4)
	if staffID != nil && serviceID != nil {
		levels = append(levels, level{"staff+service", staffID, serviceID})
	}
	if serviceID != nil {
		levels = append(levels, level{"service only", nil, serviceID})
	}
	if staffID != nil {
		levels = append(levels, level{"staff only", staffID, nil})
	}
	levels = append(levels, level{"global", nil, nil})

	for _, l := range levels {
		cfg, err := r.GetByScope(ctx, l.staffID, l.serviceID)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: GetWithHierarchy - level %s: %v", ErrExecQuery, l.name, err)
		}
	}

	return nil, ErrConfigNotFound
}

// Upsert создает или обновляет конфигурацию для области (staff_id, service_id)
func (r *Repository) Upsert(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// NULL в уникальном индексе не сравнивается, поэтому область задана выражением COALESCE
	query, args, err := psqlbuilder.Insert(table).
		Columns("staff_id", "service_id", "step_minutes", "horizon_days", "min_lead_minutes").
		Values(cfg.StaffID, cfg.ServiceID, cfg.StepMinutes, cfg.HorizonDays, cfg.MinLeadMinutes).
		Suffix("ON CONFLICT ((COALESCE(staff_id, 0)), (COALESCE(service_id, 0))) DO UPDATE SET " +
			"step_minutes = EXCLUDED.step_minutes, " +
			"horizon_days = EXCLUDED.horizon_days, " +
			"min_lead_minutes = EXCLUDED.min_lead_minutes, " +
			"updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

func scopeFilter(staffID *int64, serviceID *int64) squirrel.And {
	filter := squirrel.And{}

	if staffID == nil {
		filter = append(filter, squirrel.Eq{"staff_id": nil})
	} else {
		filter = append(filter, squirrel.Eq{"staff_id": *staffID})
	}

	if serviceID == nil {
		filter = append(filter, squirrel.Eq{"service_id": nil})
	} else {
		filter = append(filter, squirrel.Eq{"service_id": *serviceID})
	}

	return filter
}

func scanConfig(row *sql.Row) (*domain.SchedulingConfig, error) {
	var cfg domain.SchedulingConfig
	var staffID, serviceID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&cfg.ID,
		&staffID,
		&serviceID,
		&cfg.StepMinutes,
		&cfg.HorizonDays,
		&cfg.MinLeadMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if staffID.Valid {
		cfg.StaffID = &staffID.Int64
	}
	if serviceID.Valid {
		cfg.ServiceID = &serviceID.Int64
	}
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
