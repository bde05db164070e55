// Package availability вычисляет свободные слоты для записи.
//
// Пакет не выполняет ввод-вывод: расписание, выходные дни и записи передаются
// вызывающим кодом, все функции чистые и детерминированные.
package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration длительность интервала, 0 для пустого
func (i Interval) Duration() time.Duration {
	if !i.End.After(i.Start) {
		return 0
	}
	return i.End.Sub(i.Start)
}

// IsEmpty возвращает true для интервала нулевой или отрицательной длины
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Overlaps проверяет пересечение полуоткрытых интервалов.
// Интервалы, которые только касаются границами, не пересекаются.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Clip обрезает интервал границами bounds. ok = false, если пересечения нет.
func (i Interval) Clip(bounds Interval) (Interval, bool) {
	start := i.Start
	if start.Before(bounds.Start) {
		start = bounds.Start
	}
	end := i.End
	if end.After(bounds.End) {
		end = bounds.End
	}
	clipped := Interval{Start: start, End: end}
	if clipped.IsEmpty() {
		return Interval{}, false
	}
	return clipped, true
}

// DateOf возвращает полночь календарной даты t в часовом поясе loc.
// Берутся год, месяц и день из t без перевода между поясами.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Today возвращает текущую дату салона
func Today(now time.Time, loc *time.Location) time.Time {
	return DateOf(now.In(loc), loc)
}

// DateKey ключ даты YYYY-MM-DD
func DateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

// InHorizon проверяет, что дата не в прошлом и не дальше horizonDays от сегодня.
// horizonDays <= 0 означает отсутствие верхней границы.
func InHorizon(date, now time.Time, horizonDays int, loc *time.Location) bool {
	today := Today(now, loc)
	day := DateOf(date, loc)
	if day.Before(today) {
		return false
	}
	if horizonDays <= 0 {
		return true
	}
	return !day.After(today.AddDate(0, 0, horizonDays))
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
