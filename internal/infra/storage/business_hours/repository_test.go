package business_hours

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestGetAll(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT day_of_week, is_open, open_time, close_time, updated_at FROM business_hours ORDER BY day_of_week ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"day_of_week", "is_open", "open_time", "close_time", "updated_at"}).
			AddRow(0, false, nil, nil, now).
			AddRow(1, true, []byte("09:00:00"), []byte("18:00:00"), now))

	hours, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 2)

	assert.False(t, hours[0].IsOpen)
	assert.True(t, hours[0].OpenTime.IsZero())
	assert.Equal(t, "09:00", hours[1].OpenTime.String())
	assert.Equal(t, "18:00", hours[1].CloseTime.String())
	assert.True(t, hours[1].IsValid())
}

func TestGetAll_QueryError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM business_hours").WillReturnError(errors.New("timeout"))

	_, err := repo.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (day_of_week) DO UPDATE")).
		WithArgs(6, true, "11:00", "15:00").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	h, err := repo.Upsert(context.Background(), &domain.BusinessHours{
		DayOfWeek: 6, IsOpen: true, OpenTime: "11:00", CloseTime: "15:00",
	})
	require.NoError(t, err)
	assert.Equal(t, now, h.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDefaults_InsertsAllWeekdays(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")).
		WithArgs(
			0, false, nil, nil,
			1, true, "09:00", "18:00",
			2, true, "09:00", "18:00",
			3, true, "09:00", "18:00",
			4, true, "09:00", "18:00",
			5, true, "09:00", "18:00",
			6, true, "10:00", "16:00",
		).
		WillReturnResult(sqlmock.NewResult(0, 7))

	require.NoError(t, repo.SeedDefaults(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
