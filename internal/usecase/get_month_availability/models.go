package get_month_availability

import "time"

// Request модель запроса доступных дат месяца
type Request struct {
	StaffID   int64 // ID мастера
	ServiceID int64 // ID услуги
	Year      int
	Month     int // 1..12, иначе пустой результат
}

// Response модель ответа со списком дат
type Response struct {
	StaffID   int64
	ServiceID int64
	Year      int
	Month     int
	Days      []time.Time // Даты по возрастанию, полночь в часовом поясе салона
}
