package availability

import "time"

// DaysWithAvailability возвращает даты месяца, на которые есть хотя бы один слот.
//
// Каждый день проходит тот же путь, что и DaySlots, поэтому дата из результата
// никогда не даст пустой список при запросе на день. Некорректный месяц даёт пустой результат.
func DaysWithAvailability(q Query, year int, month time.Month) []time.Time {
	days := make([]time.Time, 0)
	if month < time.January || month > time.December {
		return days
	}

	loc := q.Snapshot.Location()
	for day := time.Date(year, month, 1, 0, 0, 0, 0, loc); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if len(DaySlots(q, day)) > 0 {
			days = append(days, day)
		}
	}

	return days
}
