package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Уровни иерархии, из которых взята конфигурация
const (
	LevelStaffService = "staff+service"
	LevelService      = "service"
	LevelStaff        = "staff"
	LevelGlobal       = "global"
	LevelDefault      = "default"
)

// GetConfigRequest запрос эффективной конфигурации, nil означает любого мастера или любую услугу
type GetConfigRequest struct {
	StaffID   *int64 `json:"staffId,omitempty"`
	ServiceID *int64 `json:"serviceId,omitempty"`
}

// UpsertConfigRequest запрос на сохранение конфигурации для области (staffId, serviceId)
type UpsertConfigRequest struct {
	StaffID        *int64 `json:"staffId,omitempty"`   // NULL = для всех мастеров
	ServiceID      *int64 `json:"serviceId,omitempty"` // NULL = для всех услуг
	StepMinutes    int    `json:"stepMinutes"`
	HorizonDays    int    `json:"horizonDays"`
	MinLeadMinutes int    `json:"minLeadMinutes"`
}

// ConfigResponse ответ с параметрами сетки
type ConfigResponse struct {
	ID             int64      `json:"id,omitempty"`
	StaffID        *int64     `json:"staffId,omitempty"`
	ServiceID      *int64     `json:"serviceId,omitempty"`
	StepMinutes    int        `json:"stepMinutes"`
	HorizonDays    int        `json:"horizonDays"`
	MinLeadMinutes int        `json:"minLeadMinutes"`
	Level          string     `json:"level"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.SchedulingConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:             c.ID,
		StaffID:        c.StaffID,
		ServiceID:      c.ServiceID,
		StepMinutes:    c.StepMinutes,
		HorizonDays:    c.HorizonDays,
		MinLeadMinutes: c.MinLeadMinutes,
		Level:          LevelOf(c),
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = &c.CreatedAt
	}
	if !c.UpdatedAt.IsZero() {
		resp.UpdatedAt = &c.UpdatedAt
	}

	return resp
}

// LevelOf уровень иерархии конфигурации; конфигурация без ID считается значениями по умолчанию
func LevelOf(c *domain.SchedulingConfig) string {
	switch {
	case c.ID == 0:
		return LevelDefault
	case c.StaffID != nil && c.ServiceID != nil:
		return LevelStaffService
	case c.ServiceID != nil:
		return LevelService
	case c.StaffID != nil:
		return LevelStaff
	default:
		return LevelGlobal
	}
}

// ToDomainConfig конвертирует запрос в domain модель
func (r *UpsertConfigRequest) ToDomainConfig() *domain.SchedulingConfig {
	return &domain.SchedulingConfig{
		StaffID:        r.StaffID,
		ServiceID:      r.ServiceID,
		StepMinutes:    r.StepMinutes,
		HorizonDays:    r.HorizonDays,
		MinLeadMinutes: r.MinLeadMinutes,
	}
}
