package catalog

import "errors"

var (
	// ErrStaffServiceNotFound возвращается, когда мастер не оказывает услугу или услуга неактивна
	ErrStaffServiceNotFound = errors.New("catalog.repository: service is not provided by staff member")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
