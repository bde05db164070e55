package create_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeUseCase struct {
	err error
	req *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{
		ID: 1, StaffID: req.StaffID, ServiceID: req.ServiceID, ClientName: req.ClientName,
		StartAt: req.StartAt, EndAt: req.StartAt.Add(time.Hour), DurationMin: 60, Status: "PENDING",
	}, nil
}

const validBody = `{"staffId":7,"serviceId":3,"startAt":"2026-10-19T10:00:00+03:00","clientName":"Анна"}`

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := post(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PENDING"`)
	assert.Equal(t, "2026-10-19T07:00:00Z", uc.req.StartAt.UTC().Format(time.RFC3339))
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"broken json", `{"staffId":`, nil, http.StatusBadRequest},
		{"bad start", `{"staffId":7,"serviceId":3,"startAt":"10:00","clientName":"Анна"}`, nil, http.StatusBadRequest},
		{"invalid input", validBody, createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"not found", validBody, createAppointment.ErrStaffServiceNotFound, http.StatusNotFound},
		{"taken", validBody, createAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{"internal", validBody, createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, post(&fakeUseCase{err: tt.err}, tt.body).Code)
		})
	}
}
