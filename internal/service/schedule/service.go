package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	offDayRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/off_day"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// Service сервис расписания салона: часы работы, выходные и снимок для расчёта слотов.
// Любое изменение часов или выходных сбрасывает кэш.
type Service struct {
	hoursRepo    BusinessHoursRepository
	offDayRepo   OffDayRepository
	cache        Cache
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса. cache может быть nil.
func NewService(
	hoursRepo BusinessHoursRepository,
	offDayRepo OffDayRepository,
	cache Cache,
	location *time.Location,
	logger Logger,
) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		hoursRepo:    hoursRepo,
		offDayRepo:   offDayRepo,
		cache:        cache,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Location часовой пояс салона
func (s *Service) Location() *time.Location {
	return s.location
}

// SeedDefaults заполняет расписание по умолчанию для дней, которых ещё нет в БД
func (s *Service) SeedDefaults(ctx context.Context) error {
	if err := s.hoursRepo.SeedDefaults(ctx); err != nil {
		s.logger.Error("SeedDefaults: repository error: %v", err)
		return fmt.Errorf("%w: SeedDefaults - repository error: %v", ErrInternal, err)
	}
	s.invalidate(ctx, "SeedDefaults")
	return nil
}

// GetBusinessHours возвращает часы работы по дням недели
func (s *Service) GetBusinessHours(ctx context.Context) (*models.BusinessHoursListResponse, error) {
	hours, err := s.loadHours(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBusinessHoursList(hours), nil
}

// UpdateBusinessHours меняет часы работы одного дня недели
func (s *Service) UpdateBusinessHours(ctx context.Context, dayOfWeek int, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("UpdateBusinessHours: day=%d, open=%t, %s-%s", dayOfWeek, req.IsOpen, req.OpenTime, req.CloseTime)

	hours, err := toDomainHours(dayOfWeek, req)
	if err != nil {
		s.logger.Warn("UpdateBusinessHours: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.hoursRepo.Upsert(ctx, hours)
	if err != nil {
		s.logger.Error("UpdateBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateBusinessHours - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "UpdateBusinessHours")

	resp := models.FromDomainBusinessHours(*saved)
	return &resp, nil
}

// ListOffDays возвращает выходные в диапазоне [from, to]. from > to даёт пустой список.
func (s *Service) ListOffDays(ctx context.Context, from, to time.Time) (*models.OffDayListResponse, error) {
	from = availability.DateOf(from, s.location)
	to = availability.DateOf(to, s.location)
	if from.After(to) {
		return models.FromDomainOffDayList(nil), nil
	}

	offDays, err := s.loadOffDays(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return models.FromDomainOffDayList(offDays), nil
}

// CreateOffDay добавляет выходной. Дата не может быть в прошлом по времени салона.
func (s *Service) CreateOffDay(ctx context.Context, req *models.CreateOffDayRequest) (*models.OffDayResponse, error) {
	s.logger.Info("CreateOffDay: date=%s", req.Date)

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, s.location)
	if err != nil {
		s.logger.Warn("CreateOffDay: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	today := availability.Today(s.timeProvider.Now(), s.location)
	if date.Before(today) {
		s.logger.Warn("CreateOffDay: date %s is before today %s", req.Date, availability.DateKey(today))
		return nil, ErrOffDayInPast
	}

	created, err := s.offDayRepo.Create(ctx, &domain.OffDay{Date: date, Reason: req.Reason})
	if err != nil {
		if errors.Is(err, offDayRepo.ErrOffDayAlreadyExists) {
			s.logger.Warn("CreateOffDay: off-day for %s already exists", req.Date)
			return nil, ErrOffDayAlreadyExists
		}
		s.logger.Error("CreateOffDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateOffDay - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "CreateOffDay")

	s.logger.Info("CreateOffDay: successfully created off-day id=%d for %s", created.ID, created.DateKey())
	resp := models.FromDomainOffDay(created)
	return &resp, nil
}

// DeleteOffDay удаляет выходной, день снова становится рабочим по расписанию недели
func (s *Service) DeleteOffDay(ctx context.Context, id int64) error {
	s.logger.Info("DeleteOffDay: id=%d", id)

	offDay, err := s.offDayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offDayRepo.ErrOffDayNotFound) {
			s.logger.Warn("DeleteOffDay: off-day id=%d not found", id)
			return ErrOffDayNotFound
		}
		s.logger.Error("DeleteOffDay: failed to get off-day id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteOffDay - get off-day: %v", ErrInternal, err)
	}

	if err := s.offDayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, offDayRepo.ErrOffDayNotFound) {
			s.logger.Warn("DeleteOffDay: off-day id=%d not found", id)
			return ErrOffDayNotFound
		}
		s.logger.Error("DeleteOffDay: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteOffDay - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "DeleteOffDay")

	s.logger.Info("DeleteOffDay: %s is a working day again", offDay.DateKey())
	return nil
}

// LoadSnapshot собирает снимок расписания для дат [from, to]
func (s *Service) LoadSnapshot(ctx context.Context, from, to time.Time) (*availability.Snapshot, error) {
	hours, err := s.loadHours(ctx)
	if err != nil {
		return nil, err
	}

	offDays, err := s.loadOffDays(ctx, availability.DateOf(from, s.location), availability.DateOf(to, s.location))
	if err != nil {
		return nil, err
	}

	return availability.NewSnapshot(hours, offDays, s.location), nil
}

func (s *Service) loadHours(ctx context.Context) ([]domain.BusinessHours, error) {
	version, cacheable := s.cache.Version(ctx)
	if cacheable {
		if hours, ok := s.cache.GetHours(ctx, version); ok {
			return hours, nil
		}
	}

	hours, err := s.hoursRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("loadHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: loadHours - repository error: %v", ErrInternal, err)
	}

	if cacheable {
		s.cache.SetHours(ctx, version, hours)
	}
	return hours, nil
}

func (s *Service) loadOffDays(ctx context.Context, from, to time.Time) ([]domain.OffDay, error) {
	version, cacheable := s.cache.Version(ctx)
	if cacheable {
		if offDays, ok := s.cache.GetOffDays(ctx, version, from, to); ok {
			return offDays, nil
		}
	}

	offDays, err := s.offDayRepo.ListInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("loadOffDays: repository error for %s..%s: %v", availability.DateKey(from), availability.DateKey(to), err)
		return nil, fmt.Errorf("%w: loadOffDays - repository error: %v", ErrInternal, err)
	}

	if cacheable {
		s.cache.SetOffDays(ctx, version, from, to, offDays)
	}
	return offDays, nil
}

// invalidate сбрасывает кэш после изменения. Ошибка только логируется:
// данные в БД уже изменены, а устаревший кэш истечёт по TTL.
func (s *Service) invalidate(ctx context.Context, op string) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("%s: failed to invalidate schedule cache: %v", op, err)
	}
}

func toDomainHours(dayOfWeek int, req *models.UpdateBusinessHoursRequest) (*domain.BusinessHours, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}

	hours := &domain.BusinessHours{DayOfWeek: dayOfWeek, IsOpen: req.IsOpen}
	if !req.IsOpen && req.OpenTime == "" && req.CloseTime == "" {
		return hours, nil
	}

	open, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: openTime must be HH:MM", ErrInvalidBusinessHours)
	}
	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: closeTime must be HH:MM", ErrInvalidBusinessHours)
	}

	hours.OpenTime = open
	hours.CloseTime = closeTime
	if !hours.IsValid() {
		return nil, fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidBusinessHours)
	}

	return hours, nil
}
