package list_off_days

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOffDays(ctx context.Context, from, to time.Time) (*models.OffDayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
