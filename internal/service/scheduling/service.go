package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/scheduling_config"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/scheduling/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
)

// Service сервис параметров сетки слотов.
// Если в БД нет ни одной подходящей строки, используются значения из конфигурационного файла.
type Service struct {
	configRepo ConfigRepository
	defaults   domain.SchedulingConfig
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(configRepo ConfigRepository, defaults domain.SchedulingConfig, logger Logger) *Service {
	defaults.ID = 0
	defaults.StaffID = nil
	defaults.ServiceID = nil
	return &Service{
		configRepo: configRepo,
		defaults:   defaults,
		logger:     logger,
	}
}

// Effective возвращает конфигурацию для пары (мастер, услуга).
// Дневной и месячный запросы получают её отсюда, поэтому сетка и горизонт у них совпадают.
func (s *Service) Effective(ctx context.Context, staffID, serviceID int64) (*domain.SchedulingConfig, error) {
	return s.resolve(ctx, ptr.Ptr(staffID), ptr.Ptr(serviceID))
}

// GetWithHierarchy получает эффективную конфигурацию с указанием уровня, с которого она взята
func (s *Service) GetWithHierarchy(ctx context.Context, req *models.GetConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("GetWithHierarchy: fetching config for staff=%v, service=%v", ptr.Value(req.StaffID), ptr.Value(req.ServiceID))

	cfg, err := s.resolve(ctx, req.StaffID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainConfig(cfg)
	s.logger.Info("GetWithHierarchy: resolved config id=%d (level: %s)", cfg.ID, resp.Level)
	return resp, nil
}

// Upsert создает или заменяет конфигурацию для области (staffId, serviceId)
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: saving config for staff=%v, service=%v", ptr.Value(req.StaffID), ptr.Value(req.ServiceID))

	cfg := req.ToDomainConfig()
	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

func (s *Service) resolve(ctx context.Context, staffID, serviceID *int64) (*domain.SchedulingConfig, error) {
	cfg, err := s.configRepo.GetWithHierarchy(ctx, staffID, serviceID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("resolve: repository error: %v", err)
		return nil, fmt.Errorf("%w: resolve - repository error: %v", ErrInternal, err)
	}

	defaults := s.defaults
	return &defaults, nil
}

func validateConfig(cfg *domain.SchedulingConfig) error {
	if cfg.StepMinutes < domain.MinStepMinutes || cfg.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d", ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if cfg.HorizonDays < domain.MinHorizonDays || cfg.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizonDays must be between %d and %d", ErrInvalidInput, domain.MinHorizonDays, domain.MaxHorizonDays)
	}
	if cfg.MinLeadMinutes < 0 || cfg.MinLeadMinutes > domain.MaxLeadMinutes {
		return fmt.Errorf("%w: minLeadMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxLeadMinutes)
	}
	if cfg.StaffID != nil && *cfg.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}
	if cfg.ServiceID != nil && *cfg.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	return nil
}
