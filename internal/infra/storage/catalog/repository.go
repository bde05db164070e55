package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

// Repository каталог услуг и цен мастеров (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceForStaff возвращает активную услугу с ценой конкретного мастера.
// Пара (услуга, мастер) без записи в service_staff_prices считается несуществующей.
func (r *Repository) GetServiceForStaff(ctx context.Context, serviceID, staffID int64) (*domain.StaffService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.id", "s.name", "s.duration_min", "s.is_active", "p.staff_id", "p.price").
		From("services s").
		Join("service_staff_prices p ON p.service_id = s.id").
		Where(squirrel.Eq{"s.id": serviceID, "p.staff_id": staffID, "s.is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceForStaff - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.StaffService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.DurationMin,
		&svc.IsActive,
		&svc.StaffID,
		&svc.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceForStaff - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}
