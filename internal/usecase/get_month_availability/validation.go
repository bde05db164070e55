package get_month_availability

import "fmt"

// validateRequest валидирует идентификаторы. Год и месяц вне диапазона
// не ошибка: такой запрос даёт пустой ответ.
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	return nil
}

func isValidMonth(year, month int) bool {
	return year > 0 && month >= 1 && month <= 12
}
