package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToDomainStatus нормализует и проверяет статус
func (r *UpdateStatusRequest) ToDomainStatus() (domain.AppointmentStatus, bool) {
	status := domain.AppointmentStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	return status, status.IsValid()
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	StaffID     int64     `json:"staffId"`
	ServiceID   int64     `json:"serviceId"`
	ClientName  string    `json:"clientName"`
	ClientPhone *string   `json:"clientPhone,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	Status      string    `json:"status"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainAppointment конвертирует domain модель в DTO.
// Время отдаётся в часовом поясе салона.
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	return &AppointmentResponse{
		ID:          a.ID,
		StaffID:     a.StaffID,
		ServiceID:   a.ServiceID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		Notes:       a.Notes,
		StartAt:     a.StartAt.In(loc),
		EndAt:       a.EndAt.In(loc),
		Status:      string(a.Status),
		Price:       a.Price,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
