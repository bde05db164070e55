package get_month_availability

import (
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	getMonthAvailability "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_month_availability"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	StaffID   int64    `json:"staffId"`
	ServiceID int64    `json:"serviceId"`
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	Days      []string `json:"days"` // YYYY-MM-DD
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	days := make([]string, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = day.Format(domain.DateFormat)
	}

	return &MonthAvailabilityResponse{
		StaffID:   resp.StaffID,
		ServiceID: resp.ServiceID,
		Year:      resp.Year,
		Month:     resp.Month,
		Days:      days,
	}
}
