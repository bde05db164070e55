package scheduling

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// ConfigRepository интерфейс репозитория параметров сетки слотов
type ConfigRepository interface {
	GetWithHierarchy(ctx context.Context, staffID *int64, serviceID *int64) (*domain.SchedulingConfig, error)
	Upsert(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
