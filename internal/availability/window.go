package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Snapshot неизменяемый снимок расписания салона на время одного запроса.
// Собирается один раз и переиспользуется для всех дней при сканировании месяца.
type Snapshot struct {
	hours    map[time.Weekday]domain.BusinessHours
	offDays  map[string]struct{}
	location *time.Location
}

// NewSnapshot строит снимок из часов работы и выходных дней.
// Все даты и время интерпретируются в часовом поясе салона loc.
func NewSnapshot(hours []domain.BusinessHours, offDays []domain.OffDay, loc *time.Location) *Snapshot {
	if loc == nil {
		loc = time.UTC
	}

	s := &Snapshot{
		hours:    make(map[time.Weekday]domain.BusinessHours, len(hours)),
		offDays:  make(map[string]struct{}, len(offDays)),
		location: loc,
	}
	for _, h := range hours {
		s.hours[h.Weekday()] = h
	}
	for _, d := range offDays {
		s.offDays[d.DateKey()] = struct{}{}
	}
	return s
}

// Location часовой пояс салона
func (s *Snapshot) Location() *time.Location {
	return s.location
}

// IsOffDay возвращает true, если дата отмечена как выходной
func (s *Snapshot) IsOffDay(date time.Time) bool {
	_, ok := s.offDays[DateKey(date)]
	return ok
}

// ResolveWindow возвращает рабочий интервал на дату или open = false, если салон закрыт.
//
// Отсутствующая или некорректная строка расписания трактуется как выходной, а не ошибка.
// staffID пока не используется: расписание общее для салона.
func (s *Snapshot) ResolveWindow(date time.Time, staffID int64) (window Interval, open bool) {
	day := DateOf(date, s.location)

	if s.IsOffDay(day) {
		return Interval{}, false
	}

	hours, ok := s.hours[day.Weekday()]
	if !ok || !hours.IsOpen || !hours.IsValid() {
		return Interval{}, false
	}

	start, err := hours.OpenTime.On(day, s.location)
	if err != nil {
		return Interval{}, false
	}
	end, err := hours.CloseTime.On(day, s.location)
	if err != nil {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}
