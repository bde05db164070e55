package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	getDaySlots "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date        string   `json:"date"`
	StaffID     int64    `json:"staffId"`
	ServiceID   int64    `json:"serviceId"`
	DurationMin int      `json:"durationMin"`
	Slots       []string `json:"slots"` // ISO-8601 с часовым поясом салона
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.Format(time.RFC3339)
	}

	return &DaySlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		StaffID:     resp.StaffID,
		ServiceID:   resp.ServiceID,
		DurationMin: resp.DurationMin,
		Slots:       slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(staffID, serviceID int64, dateStr string) (*getDaySlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySlots.Request{
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
