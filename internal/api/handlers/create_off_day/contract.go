package create_off_day

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateOffDay(ctx context.Context, req *models.CreateOffDayRequest) (*models.OffDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
