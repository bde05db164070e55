package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// BusinessHours часы работы салона в конкретный день недели (0 = воскресенье)
type BusinessHours struct {
	DayOfWeek int
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
	UpdatedAt time.Time
}

// IsValid проверяет инвариант: у открытого дня время открытия раньше закрытия
func (h *BusinessHours) IsValid() bool {
	if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
		return false
	}
	if !h.IsOpen {
		return true
	}
	if h.OpenTime.Validate() != nil || h.CloseTime.Validate() != nil {
		return false
	}
	return h.OpenTime.IsBefore(h.CloseTime)
}

// Weekday возвращает день недели в терминах пакета time
func (h *BusinessHours) Weekday() time.Weekday {
	return time.Weekday(h.DayOfWeek)
}

// DefaultBusinessHours расписание, которым заполняется пустая таблица:
// пн-пт 09:00-18:00, сб 10:00-16:00, вс выходной
func DefaultBusinessHours() []BusinessHours {
	hours := make([]BusinessHours, 0, 7)
	for day := 0; day <= 6; day++ {
		h := BusinessHours{DayOfWeek: day}
		switch time.Weekday(day) {
		case time.Sunday:
		case time.Saturday:
			h.IsOpen = true
			h.OpenTime = "10:00"
			h.CloseTime = "16:00"
		default:
			h.IsOpen = true
			h.OpenTime = DefaultOpenTime
			h.CloseTime = DefaultCloseTime
		}
		hours = append(hours, h)
	}
	return hours
}
