package delete_off_day

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeService struct{ err error }

func (f fakeService) DeleteOffDay(context.Context, int64) error { return f.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"deleted", "/off-days/5", nil, http.StatusNoContent},
		{"bad id", "/off-days/abc", nil, http.StatusBadRequest},
		{"not found", "/off-days/5", schedule.ErrOffDayNotFound, http.StatusNotFound},
		{"internal", "/off-days/5", schedule.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/off-days/{offDayId}", NewHandler(fakeService{err: tt.err}, logger.Nop()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, tt.target, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
