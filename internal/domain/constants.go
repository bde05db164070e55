package domain

// Значения по умолчанию
const (
	DefaultStepMinutes    = 30
	DefaultHorizonDays    = 30
	DefaultMinLeadMinutes = 0
	DefaultOpenTime       = "09:00"
	DefaultCloseTime      = "18:00"
)

// Границы бизнес-валидации
const (
	MinStepMinutes   = 5
	MaxStepMinutes   = 240
	MinHorizonDays   = 1
	MaxHorizonDays   = 365
	MaxLeadMinutes   = 10080 // неделя
	MaxNotesLength   = 500
	MaxReasonLength  = 255
	MaxClientNameLen = 120
)

// Форматы времени
const (
	TimeFormat = "15:04"
	DateFormat = "2006-01-02"
)
