package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	StaffID     int64     // ID мастера
	ServiceID   int64     // ID услуги
	StartAt     time.Time // Начало слота
	ClientName  string    // Имя клиента
	ClientPhone *string   // Телефон (опционально)
	Notes       *string   // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	StaffID     int64
	ServiceID   int64
	ClientName  string
	ClientPhone *string
	Notes       *string
	StartAt     time.Time // В часовом поясе салона
	EndAt       time.Time
	DurationMin int
	Status      string
	Price       float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
