package create_appointment

import "errors"

var (
	// ErrStaffServiceNotFound возвращается, когда мастер не оказывает услугу
	ErrStaffServiceNotFound = errors.New("create_appointment: service is not provided by staff member")

	// ErrSlotNotAvailable возвращается, когда время начала не входит в список свободных слотов
	// (занято, вне сетки, вне рабочих часов или за горизонтом записи)
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
