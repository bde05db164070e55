package availability

import (
	"sort"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// FreeIntervals вычитает занятое время из рабочего интервала.
//
// Отменённые и некорректные (EndAt <= StartAt) записи игнорируются. Записи,
// выходящие за границы окна, блокируют только пересекающуюся часть.
// Результат отсортирован, интервалы не пересекаются и не соприкасаются.
func FreeIntervals(window Interval, appointments []domain.Appointment) []Interval {
	if window.IsEmpty() {
		return []Interval{}
	}

	busy := make([]Interval, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		if !a.OccupiesTime() || !a.EndAt.After(a.StartAt) {
			continue
		}
		busy = append(busy, Interval{Start: a.StartAt, End: a.EndAt})
	}

	sort.SliceStable(busy, func(i, j int) bool {
		if !busy[i].Start.Equal(busy[j].Start) {
			return busy[i].Start.Before(busy[j].Start)
		}
		return busy[i].End.Before(busy[j].End)
	})

	loc := window.Start.Location()
	clipped := busy[:0]
	for _, b := range busy {
		c, ok := b.Clip(window)
		if !ok {
			continue
		}
		// Сетка слотов строится по местному времени салона
		c.Start = c.Start.In(loc)
		c.End = c.End.In(loc)
		clipped = append(clipped, c)
	}

	blocked := mergeIntervals(clipped)

	free := make([]Interval, 0, len(blocked)+1)
	cursor := window.Start
	for _, b := range blocked {
		if b.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if window.End.After(cursor) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}

	return free
}

// mergeIntervals склеивает пересекающиеся и соприкасающиеся интервалы.
// Вход должен быть отсортирован по началу.
func mergeIntervals(sorted []Interval) []Interval {
	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		if n := len(merged); n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
