package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListByStaffInRange(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetServiceForStaff(ctx context.Context, serviceID, staffID int64) (*domain.StaffService, error)
}

// SchedulingConfigProvider источник параметров сетки
type SchedulingConfigProvider interface {
	Effective(ctx context.Context, staffID, serviceID int64) (*domain.SchedulingConfig, error)
}

// ScheduleProvider источник снимка расписания салона
type ScheduleProvider interface {
	LoadSnapshot(ctx context.Context, from, to time.Time) (*availability.Snapshot, error)
	Location() *time.Location
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
