package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeRepo struct {
	items     map[int64]*domain.Appointment
	updateErr error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.items[id].Status = status
	return nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var msk = time.FixedZone("MSK", 3*60*60)

func newService(status domain.AppointmentStatus) (*Service, *fakeRepo) {
	start := time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)
	repo := &fakeRepo{items: map[int64]*domain.Appointment{
		1: {ID: 1, StaffID: 7, ServiceID: 3, StartAt: start, EndAt: start.Add(time.Hour), Status: status},
	}}
	return NewService(repo, inlineTx{}, msk, logger.Nop()), repo
}

func TestGetByID_ReturnsBusinessLocalTimes(t *testing.T) {
	svc, _ := newService(domain.StatusPending)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19T10:00:00+03:00", resp.StartAt.Format(time.RFC3339))
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newService(domain.StatusPending)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_Cancel(t *testing.T) {
	svc, repo := newService(domain.StatusConfirmed)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.items[1].Status)
}

func TestUpdateStatus_RejectsTransitionFromFinal(t *testing.T) {
	svc, repo := newService(domain.StatusCancelled)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "CONFIRMED"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorContains(t, err, "already CANCELLED")
	assert.Equal(t, domain.StatusCancelled, repo.items[1].Status)

	svc, _ = newService(domain.StatusCompleted)
	_, err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "CANCELLED"})
	assert.ErrorContains(t, err, "already COMPLETED")
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newService(domain.StatusPending)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "LOST"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_RepositoryError(t *testing.T) {
	svc, repo := newService(domain.StatusPending)
	repo.updateErr = errors.New("deadlock detected")

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "CONFIRMED"})
	assert.ErrorIs(t, err, ErrInternal)
}
