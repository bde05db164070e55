package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/scheduling_config"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/scheduling/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
)

type fakeRepo struct {
	found    *domain.SchedulingConfig
	err      error
	upserted *domain.SchedulingConfig
}

func (f *fakeRepo) GetWithHierarchy(_ context.Context, _ *int64, _ *int64) (*domain.SchedulingConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.found == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.found, nil
}

func (f *fakeRepo) Upsert(_ context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg.ID = 11
	f.upserted = cfg
	return cfg, nil
}

var defaults = domain.SchedulingConfig{StepMinutes: 30, HorizonDays: 30}

func TestEffective_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{}, defaults, logger.Nop())

	cfg, err := svc.Effective(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.StepMinutes)
	assert.Equal(t, models.LevelDefault, models.LevelOf(cfg))
}

func TestEffective_UsesStoredConfig(t *testing.T) {
	stored := &domain.SchedulingConfig{ID: 4, ServiceID: ptr.Ptr(int64(3)), StepMinutes: 15, HorizonDays: 14}
	svc := NewService(&fakeRepo{found: stored}, defaults, logger.Nop())

	resp, err := svc.GetWithHierarchy(context.Background(), &models.GetConfigRequest{StaffID: ptr.Ptr(int64(7)), ServiceID: ptr.Ptr(int64(3))})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.StepMinutes)
	assert.Equal(t, models.LevelService, resp.Level)
}

func TestEffective_RepositoryErrorIsInternal(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db down")}, defaults, logger.Nop())

	_, err := svc.Effective(context.Background(), 7, 3)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpsert(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, defaults, logger.Nop())

	resp, err := svc.Upsert(context.Background(), &models.UpsertConfigRequest{
		StaffID: ptr.Ptr(int64(7)), StepMinutes: 20, HorizonDays: 60, MinLeadMinutes: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, models.LevelStaff, resp.Level)
	assert.Equal(t, 120, repo.upserted.MinLeadMinutes)
}

func TestUpsert_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, defaults, logger.Nop())

	tests := []models.UpsertConfigRequest{
		{StepMinutes: 1, HorizonDays: 30},
		{StepMinutes: 30, HorizonDays: 0},
		{StepMinutes: 30, HorizonDays: 400},
		{StepMinutes: 30, HorizonDays: 30, MinLeadMinutes: -1},
		{StaffID: ptr.Ptr(int64(0)), StepMinutes: 30, HorizonDays: 30},
	}

	for _, req := range tests {
		_, err := svc.Upsert(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", req)
	}
}
