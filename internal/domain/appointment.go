package domain

import "time"

// AppointmentStatus статус записи клиента
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// IsValid возвращает true для известных статусов
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	}
	return false
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID          int64
	StaffID     int64
	ServiceID   int64
	ClientName  string
	ClientPhone *string
	Notes       *string
	StartAt     time.Time
	EndAt       time.Time
	Status      AppointmentStatus
	Price       float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesTime возвращает true, если запись блокирует время мастера.
// Отменённая запись освобождает слот.
func (a *Appointment) OccupiesTime() bool {
	return a.Status != StatusCancelled
}

// IsFinal возвращает true для статусов, которые больше не меняются
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusCancelled || a.Status == StatusNoShow || a.Status == StatusCompleted
}

// CanTransitionTo проверяет допустимость смены статуса
//
// PENDING   -> CONFIRMED | CANCELLED
// CONFIRMED -> CANCELLED | COMPLETED | NO_SHOW
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted || next == StatusNoShow
	default:
		return false
	}
}

// Duration возвращает длительность записи
func (a *Appointment) Duration() time.Duration {
	return a.EndAt.Sub(a.StartAt)
}
