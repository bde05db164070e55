package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
)

// UseCase use case получения свободных слотов мастера на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	configProvider  SchedulingConfigProvider
	schedule        ScheduleProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	configProvider SchedulingConfigProvider,
	schedule ScheduleProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		configProvider:  configProvider,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: staff=%d, service=%d, date=%s",
		req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	loc := uc.schedule.Location()
	day := availability.DateOf(req.Date, loc)
	now := uc.timeProvider.Now()

	// 2. Услуга в исполнении мастера (длительность)
	service, err := uc.catalogRepo.GetServiceForStaff(ctx, req.ServiceID, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffServiceNotFound) {
			uc.logger.Warn("GetDaySlots: service id=%d is not provided by staff id=%d", req.ServiceID, req.StaffID)
			return nil, ErrStaffServiceNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	resp := &Response{
		StaffID:     req.StaffID,
		ServiceID:   req.ServiceID,
		Date:        day,
		DurationMin: service.DurationMin,
		Slots:       []time.Time{},
	}

	// 3. Параметры сетки с учетом иерархии
	config, err := uc.configProvider.Effective(ctx, req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get scheduling config: %v", err)
		return nil, fmt.Errorf("%w: failed to get scheduling config: %v", ErrInternal, err)
	}
	policy := availability.PolicyFromConfig(config)

	// 4. Даты в прошлом и за горизонтом дают пустой список без обращения к БД
	if !availability.InHorizon(day, now, policy.HorizonDays, loc) {
		uc.logger.Info("GetDaySlots: date %s is outside booking horizon of %d days", availability.DateKey(day), policy.HorizonDays)
		return resp, nil
	}

	// 5. Расписание и записи мастера на день
	snapshot, err := uc.schedule.LoadSnapshot(ctx, day, day)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.ListByStaffInRange(ctx, req.StaffID, day, day.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Окно работы -> вычитание записей -> перечисление слотов
	resp.Slots = availability.DaySlots(availability.Query{
		StaffID:      req.StaffID,
		DurationMin:  service.DurationMin,
		Policy:       policy,
		Snapshot:     snapshot,
		Appointments: availability.Dereference(appointments),
		Now:          now,
	}, day)

	uc.logger.Info("GetDaySlots: found %d slots for staff=%d, service=%d, date=%s",
		len(resp.Slots), req.StaffID, req.ServiceID, availability.DateKey(day))

	return resp, nil
}
