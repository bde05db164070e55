package get_month_availability

import "errors"

var (
	// ErrStaffServiceNotFound возвращается, когда мастер не оказывает услугу
	ErrStaffServiceNotFound = errors.New("get_month_availability: service is not provided by staff member")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_month_availability: invalid input data")

	// ErrInternal возвращается, когда не удалось загрузить данные для расчёта
	ErrInternal = errors.New("get_month_availability: internal error")
)
