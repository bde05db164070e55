package off_day

import "errors"

var (
	// ErrOffDayNotFound возвращается, когда выходной день не найден
	ErrOffDayNotFound = errors.New("off_day.repository: off-day not found")

	// ErrOffDayAlreadyExists возвращается при попытке создать второй выходной на ту же дату
	ErrOffDayAlreadyExists = errors.New("off_day.repository: off-day already exists for this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("off_day.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("off_day.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("off_day.repository: failed to scan row")
)
