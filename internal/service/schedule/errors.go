package schedule

import "errors"

var (
	// ErrInvalidDayOfWeek возвращается, если день недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")

	// ErrInvalidBusinessHours возвращается, если у открытого дня время открытия не раньше закрытия
	ErrInvalidBusinessHours = errors.New("invalid business hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOffDayInPast возвращается при попытке создать выходной в прошлом
	ErrOffDayInPast = errors.New("off-day date is in the past")

	// ErrOffDayAlreadyExists возвращается, если на дату уже есть выходной
	ErrOffDayAlreadyExists = errors.New("off-day already exists for this date")

	// ErrOffDayNotFound возвращается, когда выходной не найден
	ErrOffDayNotFound = errors.New("off-day not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
