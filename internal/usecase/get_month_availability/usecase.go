package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
)

// UseCase use case поиска дат месяца, на которые есть свободные слоты
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

// Execute выполняет use case.
// Расписание и записи загружаются один раз на весь месяц, дальше каждый день
// проходит тот же расчёт, что и запрос слотов на день.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: staff=%d, service=%d, month=%04d-%02d",
		req.StaffID, req.ServiceID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Year:      req.Year,
		Month:     req.Month,
		Days:      []time.Time{},
	}

	if !isValidMonth(req.Year, req.Month) {
		uc.logger.Info("GetMonthAvailability: invalid month %d-%d, returning empty result", req.Year, req.Month)
		return resp, nil
	}

	// 2. Услуга в исполнении мастера
	service, err := uc.catalogRepo.GetServiceForStaff(ctx, req.ServiceID, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffServiceNotFound) {
			uc.logger.Warn("GetMonthAvailability: service id=%d is not provided by staff id=%d", req.ServiceID, req.StaffID)
			return nil, ErrStaffServiceNotFound
		}
		uc.logger.Error("GetMonthAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Параметры сетки: тот же источник, что и у запроса на день
	config, err := uc.configProvider.Effective(ctx, req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get scheduling config: %v", err)
		return nil, fmt.Errorf("%w: failed to get scheduling config: %v", ErrInternal, err)
	}
	policy := availability.PolicyFromConfig(config)

	// 4. Пересечение месяца с [сегодня, сегодня + горизонт]
	loc := uc.schedule.Location()
	now := uc.timeProvider.Now()
	from, to, ok := clampMonth(req.Year, time.Month(req.Month), now, policy.HorizonDays, loc)
	if !ok {
		uc.logger.Info("GetMonthAvailability: month %04d-%02d is outside booking horizon", req.Year, req.Month)
		return resp, nil
	}

	// 5. Один снимок и одна выборка записей на весь диапазон
	snapshot, err := uc.schedule.LoadSnapshot(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.ListByStaffInRange(ctx, req.StaffID, from, to.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	resp.Days = availability.DaysWithAvailability(availability.Query{
		StaffID:      req.StaffID,
		DurationMin:  service.DurationMin,
		Policy:       policy,
		Snapshot:     snapshot,
		Appointments: availability.Dereference(appointments),
		Now:          now,
	}, req.Year, time.Month(req.Month))

	uc.logger.Info("GetMonthAvailability: found %d available days for staff=%d, service=%d",
		len(resp.Days), req.StaffID, req.ServiceID)

	return resp, nil
}

// clampMonth возвращает первый и последний день месяца, попадающие в горизонт записи
func clampMonth(year int, month time.Month, now time.Time, horizonDays int, loc *time.Location) (time.Time, time.Time, bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	today := availability.Today(now, loc)
	if first.Before(today) {
		first = today
	}
	if horizonDays > 0 {
		limit := today.AddDate(0, 0, horizonDays)
		if last.After(limit) {
			last = limit
		}
	}

	if last.Before(first) {
		return time.Time{}, time.Time{}, false
	}
	return first, last, true
}
