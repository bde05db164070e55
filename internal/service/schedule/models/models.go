package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// UpdateBusinessHoursRequest запрос на изменение часов работы дня недели.
// Для закрытого дня время можно не передавать.
type UpdateBusinessHoursRequest struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`  // HH:MM
	CloseTime string `json:"closeTime,omitempty"` // HH:MM
}

// BusinessHoursResponse часы работы одного дня недели
type BusinessHoursResponse struct {
	DayOfWeek int     `json:"dayOfWeek"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// BusinessHoursListResponse расписание по дням недели
type BusinessHoursListResponse struct {
	Days []BusinessHoursResponse `json:"days"`
}

// CreateOffDayRequest запрос на создание выходного
type CreateOffDayRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty"`
}

// OffDayResponse выходной день
type OffDayResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OffDayListResponse список выходных
type OffDayListResponse struct {
	OffDays []OffDayResponse `json:"offDays"`
}

// FromDomainBusinessHours конвертирует domain модель в DTO
func FromDomainBusinessHours(h domain.BusinessHours) BusinessHoursResponse {
	resp := BusinessHoursResponse{DayOfWeek: h.DayOfWeek, IsOpen: h.IsOpen}
	if !h.OpenTime.IsZero() {
		open := h.OpenTime.String()
		resp.OpenTime = &open
	}
	if !h.CloseTime.IsZero() {
		closeTime := h.CloseTime.String()
		resp.CloseTime = &closeTime
	}
	return resp
}

// FromDomainBusinessHoursList конвертирует список domain моделей в DTO
func FromDomainBusinessHoursList(hours []domain.BusinessHours) *BusinessHoursListResponse {
	resp := &BusinessHoursListResponse{Days: make([]BusinessHoursResponse, 0, len(hours))}
	for _, h := range hours {
		resp.Days = append(resp.Days, FromDomainBusinessHours(h))
	}
	return resp
}

// FromDomainOffDay конвертирует domain модель в DTO
func FromDomainOffDay(d *domain.OffDay) OffDayResponse {
	return OffDayResponse{
		ID:        d.ID,
		Date:      d.DateKey(),
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainOffDayList конвертирует список domain моделей в DTO
func FromDomainOffDayList(offDays []domain.OffDay) *OffDayListResponse {
	resp := &OffDayListResponse{OffDays: make([]OffDayResponse, 0, len(offDays))}
	for i := range offDays {
		resp.OffDays = append(resp.OffDays, FromDomainOffDay(&offDays[i]))
	}
	return resp
}
