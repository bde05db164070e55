package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Policy параметры сетки слотов. Должны совпадать для дневного запроса и сканирования месяца.
type Policy struct {
	StepMinutes    int // шаг сетки от полуночи
	HorizonDays    int // на сколько дней вперёд можно записаться, <= 0 без ограничения
	MinLeadMinutes int // минимальное время до начала слота
}

// PolicyFromConfig собирает политику из конфигурации
func PolicyFromConfig(cfg *domain.SchedulingConfig) Policy {
	return Policy{
		StepMinutes:    cfg.StepMinutes,
		HorizonDays:    cfg.HorizonDays,
		MinLeadMinutes: cfg.MinLeadMinutes,
	}
}

// EnumerateSlots перечисляет начала слотов длительностью durationMin внутри свободных интервалов.
//
// Начало каждого интервала округляется вверх до границы сетки, слот выдаётся,
// только если целиком помещается в интервал. Слоты, начинающиеся не позже now
// или раньше now + MinLeadMinutes, отбрасываются.
func EnumerateSlots(free []Interval, durationMin int, policy Policy, now time.Time) []time.Time {
	slots := make([]time.Time, 0)
	if durationMin <= 0 || policy.StepMinutes <= 0 {
		return slots
	}

	duration := minutes(durationMin)
	step := minutes(policy.StepMinutes)
	cutoff := now.Add(minutes(policy.MinLeadMinutes))

	for _, iv := range free {
		for t := alignUp(iv.Start, policy.StepMinutes); !t.Add(duration).After(iv.End); t = t.Add(step) {
			if !t.After(now) || t.Before(cutoff) {
				continue
			}
			slots = append(slots, t)
		}
	}

	return slots
}

// alignUp округляет t вверх до ближайшей границы сетки stepMinutes,
// отсчитываемой от полуночи по местному времени t
func alignUp(t time.Time, stepMinutes int) time.Time {
	wall := t.Hour()*60 + t.Minute()
	if wall%stepMinutes == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}
	next := (wall/stepMinutes + 1) * stepMinutes
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, next, 0, 0, t.Location())
}

// Query данные для вычисления доступности одного мастера и одной услуги
type Query struct {
	StaffID      int64
	DurationMin  int
	Policy       Policy
	Snapshot     *Snapshot
	Appointments []domain.Appointment
	Now          time.Time
}

// Dereference переводит записи из хранилища в значения для Query, пропуская nil
func Dereference(appointments []*domain.Appointment) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}

// DaySlots возвращает слоты на дату: окно работы -> вычитание записей -> перечисление.
// Даты в прошлом и за горизонтом записи дают пустой список.
func DaySlots(q Query, date time.Time) []time.Time {
	loc := q.Snapshot.Location()
	day := DateOf(date, loc)

	if !InHorizon(day, q.Now, q.Policy.HorizonDays, loc) {
		return []time.Time{}
	}

	window, open := q.Snapshot.ResolveWindow(day, q.StaffID)
	if !open {
		return []time.Time{}
	}

	free := FreeIntervals(window, q.Appointments)
	return EnumerateSlots(free, q.DurationMin, q.Policy, q.Now)
}

// IsBookable проверяет, что start совпадает с одним из доступных слотов своего дня
func IsBookable(q Query, start time.Time) bool {
	local := start.In(q.Snapshot.Location())
	for _, slot := range DaySlots(q, local) {
		if slot.Equal(start) {
			return true
		}
	}
	return false
}
