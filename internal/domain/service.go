package domain

// Service услуга салона
type Service struct {
	ID          int64
	Name        string
	DurationMin int
	IsActive    bool
}

// StaffService услуга в исполнении конкретного мастера (связь ServiceStaffPrice)
type StaffService struct {
	Service
	StaffID int64
	Price   float64
}
