package get_business_hours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
)

type fakeService struct{ err error }

func (f fakeService) GetBusinessHours(context.Context) (*models.BusinessHoursListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BusinessHoursListResponse{Days: []models.BusinessHoursResponse{
		{DayOfWeek: 0, IsOpen: false},
		{DayOfWeek: 1, IsOpen: true, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("18:00")},
	}}, nil
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakeService{}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/business-hours", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.BusinessHoursListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Days, 2)
	assert.False(t, body.Days[0].IsOpen)
	assert.Nil(t, body.Days[0].OpenTime)
	require.NotNil(t, body.Days[1].OpenTime)
	assert.Equal(t, "09:00", *body.Days[1].OpenTime)
}

func TestHandle_ServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakeService{err: errors.New("db down")}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/business-hours", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
