package update_business_hours

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeService struct{ err error }

func (f fakeService) UpdateBusinessHours(_ context.Context, day int, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BusinessHoursResponse{DayOfWeek: day, IsOpen: req.IsOpen}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		err    error
		want   int
	}{
		{"ok", "/business-hours/1", `{"isOpen":true,"openTime":"10:00","closeTime":"19:00"}`, nil, http.StatusOK},
		{"close day", "/business-hours/6", `{"isOpen":false}`, nil, http.StatusOK},
		{"not a number", "/business-hours/mon", `{"isOpen":false}`, nil, http.StatusBadRequest},
		{"out of range", "/business-hours/7", `{"isOpen":false}`, schedule.ErrInvalidDayOfWeek, http.StatusBadRequest},
		{"open after close", "/business-hours/1", `{"isOpen":true,"openTime":"19:00","closeTime":"10:00"}`,
			fmt.Errorf("%w: openTime must be before closeTime", schedule.ErrInvalidBusinessHours), http.StatusBadRequest},
		{"internal", "/business-hours/1", `{"isOpen":false}`, schedule.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/business-hours/{dayOfWeek}", NewHandler(fakeService{err: tt.err}, logger.Nop()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
