package get_day_slots

import "errors"

var (
	// ErrStaffServiceNotFound возвращается, когда мастер не оказывает услугу
	ErrStaffServiceNotFound = errors.New("get_day_slots: service is not provided by staff member")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal возвращается, когда не удалось загрузить данные для расчёта.
	// Отличается от пустого списка слотов.
	ErrInternal = errors.New("get_day_slots: internal error")
)
