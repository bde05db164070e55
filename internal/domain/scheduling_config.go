package domain

import "time"

// SchedulingConfig параметры сетки слотов.
// Поддерживает иерархию:
// 1. Мастер + услуга (staff_id, service_id)
// 2. Услуга у всех мастеров (NULL, service_id)
// 3. Мастер для всех услуг (staff_id, NULL)
// 4. Глобальная конфигурация (NULL, NULL)
type SchedulingConfig struct {
	ID             int64
	StaffID        *int64
	ServiceID      *int64
	StepMinutes    int
	HorizonDays    int
	MinLeadMinutes int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsGlobalConfig возвращает true для конфигурации без привязки к мастеру и услуге
func (c *SchedulingConfig) IsGlobalConfig() bool {
	return c.StaffID == nil && c.ServiceID == nil
}

// Validate проверяет границы параметров
func (c *SchedulingConfig) Validate() bool {
	return c.StepMinutes >= MinStepMinutes && c.StepMinutes <= MaxStepMinutes &&
		c.HorizonDays >= MinHorizonDays && c.HorizonDays <= MaxHorizonDays &&
		c.MinLeadMinutes >= 0 && c.MinLeadMinutes <= MaxLeadMinutes
}
