package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StaffID     int64   `json:"staffId"`
	ServiceID   int64   `json:"serviceId"`
	StartAt     string  `json:"startAt"` // ISO-8601, как в списке слотов
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	StaffID     int64     `json:"staffId"`
	ServiceID   int64     `json:"serviceId"`
	ClientName  string    `json:"clientName"`
	ClientPhone *string   `json:"clientPhone,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	DurationMin int       `json:"durationMin"`
	Status      string    `json:"status"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		StaffID:     r.StaffID,
		ServiceID:   r.ServiceID,
		StartAt:     startAt,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		StaffID:     resp.StaffID,
		ServiceID:   resp.ServiceID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		Notes:       resp.Notes,
		StartAt:     resp.StartAt,
		EndAt:       resp.EndAt,
		DurationMin: resp.DurationMin,
		Status:      resp.Status,
		Price:       resp.Price,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
