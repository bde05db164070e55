package get_month_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getMonthAvailability "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_month_availability"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeUseCase struct {
	resp *getMonthAvailability.Response
	err  error
	req  *getMonthAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getMonthAvailability.Request) (*getMonthAvailability.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/staff/{staffId}/services/{serviceId}/availability", NewHandler(uc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	uc := &fakeUseCase{resp: &getMonthAvailability.Response{
		StaffID: 7, ServiceID: 3, Year: 2026, Month: 10,
		Days: []time.Time{time.Date(2026, 10, 19, 0, 0, 0, 0, msk), time.Date(2026, 10, 20, 0, 0, 0, 0, msk)},
	}}

	rec := serve(uc, "/staff/7/services/3/availability?year=2026&month=10")
	require.Equal(t, http.StatusOK, rec.Code)

	var body MonthAvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"2026-10-19", "2026-10-20"}, body.Days)
	assert.Equal(t, 10, uc.req.Month)
}

func TestHandle_Month13PassedThrough(t *testing.T) {
	uc := &fakeUseCase{resp: &getMonthAvailability.Response{StaffID: 7, ServiceID: 3, Year: 2026, Month: 13}}

	rec := serve(uc, "/staff/7/services/3/availability?year=2026&month=13")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"days":[]`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"missing year", "/staff/7/services/3/availability?month=10", nil, http.StatusBadRequest},
		{"bad month", "/staff/7/services/3/availability?year=2026&month=oct", nil, http.StatusBadRequest},
		{"not found", "/staff/7/services/3/availability?year=2026&month=10", getMonthAvailability.ErrStaffServiceNotFound, http.StatusNotFound},
		{"internal", "/staff/7/services/3/availability?year=2026&month=10", getMonthAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&fakeUseCase{err: tt.err}, tt.target).Code)
		})
	}
}
