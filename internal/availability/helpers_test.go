package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

var msk = time.FixedZone("MSK", 3*60*60)

// weekdayHours пн-пт 09:00-18:00, выходные закрыты
func weekdayHours() []domain.BusinessHours {
	hours := make([]domain.BusinessHours, 0, 7)
	for day := 0; day <= 6; day++ {
		h := domain.BusinessHours{DayOfWeek: day}
		if day >= 1 && day <= 5 {
			h.IsOpen = true
			h.OpenTime = types.TimeString("09:00")
			h.CloseTime = types.TimeString("18:00")
		}
		hours = append(hours, h)
	}
	return hours
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, msk)
}

func at(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, msk)
}

func appointment(start, end time.Time, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{StaffID: 1, StartAt: start, EndAt: end, Status: status}
}

func hhmm(slots []time.Time) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.In(msk).Format("15:04")
	}
	return out
}
