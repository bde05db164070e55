package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
	"github.com/m04kA/SMC-SalonAvailability/pkg/txmanager"
)

var msk = time.FixedZone("MSK", 3*60*60)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointments struct {
	items     []*domain.Appointment
	listErr   error
	createErr error
	created   []*domain.Appointment
	inTx      bool
}

func (f *fakeAppointments) ListByStaffInRange(ctx context.Context, _ int64, _, _ time.Time) ([]*domain.Appointment, error) {
	f.inTx = ctx.Value(txKey{}) != nil
	return f.items, f.listErr
}

func (f *fakeAppointments) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *appt
	copied.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &copied)
	f.items = append(f.items, &copied)
	return &copied, nil
}

type fakeCatalog struct{ err error }

func (f fakeCatalog) GetServiceForStaff(_ context.Context, serviceID, staffID int64) (*domain.StaffService, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.StaffService{
		Service: domain.Service{ID: serviceID, Name: "Стрижка", DurationMin: 60, IsActive: true},
		StaffID: staffID,
		Price:   1500,
	}, nil
}

type fakeConfig struct{}

func (fakeConfig) Effective(context.Context, int64, int64) (*domain.SchedulingConfig, error) {
	return &domain.SchedulingConfig{StepMinutes: 30, HorizonDays: 30}, nil
}

type fakeSchedule struct{}

func (fakeSchedule) LoadSnapshot(context.Context, time.Time, time.Time) (*availability.Snapshot, error) {
	return availability.NewSnapshot(domain.DefaultBusinessHours(), nil, msk), nil
}

func (fakeSchedule) Location() *time.Location { return msk }

type txKey struct{}

type fakeTx struct{ commitErr error }

func (f fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		return err
	}
	return f.commitErr
}

func newUseCase(appts *fakeAppointments, catalog fakeCatalog, tx fakeTx) *UseCase {
	return NewUseCase(appts, catalog, fakeConfig{}, fakeSchedule{}, tx, logger.Nop()).
		WithTimeProvider(fixedTime{now: time.Date(2026, 10, 18, 12, 0, 0, 0, msk)})
}

func request(hour, minute int) *Request {
	return &Request{
		StaffID:    7,
		ServiceID:  3,
		StartAt:    time.Date(2026, 10, 19, hour, minute, 0, 0, msk),
		ClientName: "  Анна ",
		Notes:      ptr.Ptr("без укладки"),
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	appts := &fakeAppointments{}

	resp, err := newUseCase(appts, fakeCatalog{}, fakeTx{}).Execute(context.Background(), request(10, 30))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "Анна", resp.ClientName)
	assert.Equal(t, 1500.0, resp.Price)
	assert.Equal(t, 60, resp.DurationMin)
	assert.Equal(t, "2026-10-19T11:30:00+03:00", resp.EndAt.Format(time.RFC3339))
	assert.True(t, appts.inTx)
}

func TestExecute_AcceptsStartInAnotherZone(t *testing.T) {
	req := request(0, 0)
	req.StartAt = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC) // 09:00 MSK

	resp, err := newUseCase(&fakeAppointments{}, fakeCatalog{}, fakeTx{}).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.StartAt.Format("15:04"))
}

func TestExecute_RejectsUnavailableStarts(t *testing.T) {
	appts := &fakeAppointments{items: []*domain.Appointment{{
		StaffID: 7,
		StartAt: time.Date(2026, 10, 19, 12, 0, 0, 0, msk),
		EndAt:   time.Date(2026, 10, 19, 13, 0, 0, 0, msk),
		Status:  domain.StatusConfirmed,
	}}}
	uc := newUseCase(appts, fakeCatalog{}, fakeTx{})

	tests := []struct {
		name  string
		start time.Time
	}{
		{"overlaps appointment", time.Date(2026, 10, 19, 11, 30, 0, 0, msk)},
		{"off grid", time.Date(2026, 10, 19, 10, 15, 0, 0, msk)},
		{"ends after closing", time.Date(2026, 10, 19, 17, 30, 0, 0, msk)},
		{"closed sunday", time.Date(2026, 10, 25, 10, 0, 0, 0, msk)},
		{"in the past", time.Date(2026, 10, 18, 10, 0, 0, 0, msk)},
		{"beyond horizon", time.Date(2026, 11, 30, 10, 0, 0, 0, msk)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request(0, 0)
			req.StartAt = tt.start

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		})
	}
	assert.Empty(t, appts.created)
}

func TestExecute_SecondBookingOfSameSlotFails(t *testing.T) {
	appts := &fakeAppointments{}
	uc := newUseCase(appts, fakeCatalog{}, fakeTx{})

	_, err := uc.Execute(context.Background(), request(14, 0))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), request(14, 30))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, appts.created, 1)
}

func TestExecute_SerializationConflict(t *testing.T) {
	conflict := fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})

	_, err := newUseCase(&fakeAppointments{}, fakeCatalog{}, fakeTx{commitErr: conflict}).
		Execute(context.Background(), request(10, 0))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

// newSQLUseCase собирает use case на настоящих репозитории и менеджере транзакций поверх sqlmock
func newSQLUseCase(t *testing.T) (*UseCase, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	uc := NewUseCase(appointmentRepo.NewRepository(db), fakeCatalog{}, fakeConfig{}, fakeSchedule{},
		txmanager.NewTransactionManager(db), logger.Nop()).
		WithTimeProvider(fixedTime{now: time.Date(2026, 10, 18, 12, 0, 0, 0, msk)})
	return uc, mock
}

func TestExecute_SerializationConflictOnInsert(t *testing.T) {
	uc, mock := newSQLUseCase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), request(10, 0))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_SerializationConflictOnLock(t *testing.T) {
	uc, mock := newSQLUseCase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), request(10, 0))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_OtherDatabaseErrorIsInternal(t *testing.T) {
	uc, mock := newSQLUseCase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), request(10, 0))

	assert.ErrorIs(t, err, ErrInternal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_Errors(t *testing.T) {
	_, err := newUseCase(&fakeAppointments{}, fakeCatalog{err: catalogRepo.ErrStaffServiceNotFound}, fakeTx{}).
		Execute(context.Background(), request(10, 0))
	assert.ErrorIs(t, err, ErrStaffServiceNotFound)

	_, err = newUseCase(&fakeAppointments{listErr: errors.New("db down")}, fakeCatalog{}, fakeTx{}).
		Execute(context.Background(), request(10, 0))
	assert.ErrorIs(t, err, ErrInternal)

	_, err = newUseCase(&fakeAppointments{createErr: errors.New("db down")}, fakeCatalog{}, fakeTx{}).
		Execute(context.Background(), request(10, 0))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestValidateRequest(t *testing.T) {
	long := strings.Repeat("я", domain.MaxClientNameLen+1)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"no staff", func(r *Request) { r.StaffID = 0 }},
		{"no service", func(r *Request) { r.ServiceID = -1 }},
		{"no start", func(r *Request) { r.StartAt = time.Time{} }},
		{"blank name", func(r *Request) { r.ClientName = "   " }},
		{"long name", func(r *Request) { r.ClientName = long }},
		{"long notes", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request(10, 0)
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(request(10, 0)))
}
