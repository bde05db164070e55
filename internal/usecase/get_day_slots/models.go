package get_day_slots

import "time"

// Request модель запроса слотов на день
type Request struct {
	StaffID   int64     // ID мастера
	ServiceID int64     // ID услуги
	Date      time.Time // Календарная дата (время не учитывается)
}

// Response модель ответа со списком начал слотов
type Response struct {
	StaffID     int64
	ServiceID   int64
	Date        time.Time   // Дата в часовом поясе салона
	DurationMin int         // Длительность услуги
	Slots       []time.Time // Начала слотов по возрастанию
}
