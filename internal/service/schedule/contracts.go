package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// BusinessHoursRepository интерфейс репозитория часов работы
type BusinessHoursRepository interface {
	GetAll(ctx context.Context) ([]domain.BusinessHours, error)
	Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error)
	SeedDefaults(ctx context.Context) error
}

// OffDayRepository интерфейс репозитория выходных дней
type OffDayRepository interface {
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.OffDay, error)
	Create(ctx context.Context, offDay *domain.OffDay) (*domain.OffDay, error)
	GetByID(ctx context.Context, id int64) (*domain.OffDay, error)
	Delete(ctx context.Context, id int64) error
}

// Cache кэш часов работы и выходных. Ошибки кэша не прерывают запрос.
// Version читается до похода в БД и передаётся в Set: после Invalidate
// значения, прочитанные до изменения, в кэш не возвращаются.
type Cache interface {
	Version(ctx context.Context) (uint64, bool)
	GetHours(ctx context.Context, version uint64) ([]domain.BusinessHours, bool)
	SetHours(ctx context.Context, version uint64, hours []domain.BusinessHours)
	GetOffDays(ctx context.Context, version uint64, from, to time.Time) ([]domain.OffDay, bool)
	SetOffDays(ctx context.Context, version uint64, from, to time.Time, offDays []domain.OffDay)
	Invalidate(ctx context.Context) error
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

type noopCache struct{}

func (noopCache) Version(context.Context) (uint64, bool) {
	return 0, false
}

func (noopCache) GetHours(context.Context, uint64) ([]domain.BusinessHours, bool) {
	return nil, false
}

func (noopCache) SetHours(context.Context, uint64, []domain.BusinessHours) {}

func (noopCache) GetOffDays(context.Context, uint64, time.Time, time.Time) ([]domain.OffDay, bool) {
	return nil, false
}

func (noopCache) SetOffDays(context.Context, uint64, time.Time, time.Time, []domain.OffDay) {}

func (noopCache) Invalidate(context.Context) error {
	return nil
}
