package domain

import "time"

// OffDay дата, в которую салон полностью закрыт независимо от расписания
type OffDay struct {
	ID        int64
	Date      time.Time // только дата, время = 00:00
	Reason    *string
	CreatedAt time.Time
}

// DateKey ключ даты в формате YYYY-MM-DD
func (d *OffDay) DateKey() string {
	return d.Date.Format(DateFormat)
}
