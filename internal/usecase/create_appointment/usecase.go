package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonAvailability/pkg/txmanager"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	configProvider  SchedulingConfigProvider
	schedule        ScheduleProvider
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	configProvider SchedulingConfigProvider,
	schedule ScheduleProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		configProvider:  configProvider,
		schedule:        schedule,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Слоты дня пересчитываются в сериализуемой транзакции при заблокированных записях мастера,
// поэтому две параллельные записи на пересекающееся время не пройдут обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: staff=%d, service=%d, start=%s",
		req.StaffID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга в исполнении мастера
	service, err := uc.catalogRepo.GetServiceForStaff(ctx, req.ServiceID, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d is not provided by staff id=%d", req.ServiceID, req.StaffID)
			return nil, ErrStaffServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Параметры сетки
	config, err := uc.configProvider.Effective(ctx, req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get scheduling config: %v", err)
		return nil, fmt.Errorf("%w: failed to get scheduling config: %v", ErrInternal, err)
	}

	loc := uc.schedule.Location()
	start := req.StartAt.In(loc)
	day := availability.DateOf(start, loc)
	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 4. Проверка слота и создание записи в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		snapshot, err := uc.schedule.LoadSnapshot(txCtx, day, day)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load schedule: %v", err)
			return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}

		// 4.1. Записи мастера на день с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListByStaffInRange(txCtx, req.StaffID, day, day.AddDate(0, 0, 1))
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return uc.conflict(req.StaffID, start)
			}
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.2. Время начала должно совпасть с одним из слотов дня
		query := availability.Query{
			StaffID:      req.StaffID,
			DurationMin:  service.DurationMin,
			Policy:       availability.PolicyFromConfig(config),
			Snapshot:     snapshot,
			Appointments: availability.Dereference(appointments),
			Now:          now,
		}
		if !availability.IsBookable(query, start) {
			uc.logger.Warn("CreateAppointment: slot %s is not available for staff=%d", start.Format(time.RFC3339), req.StaffID)
			return ErrSlotNotAvailable
		}

		// 4.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			StaffID:     req.StaffID,
			ServiceID:   req.ServiceID,
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: req.ClientPhone,
			Notes:       req.Notes,
			StartAt:     start,
			EndAt:       start.Add(time.Duration(service.DurationMin) * time.Minute),
			Status:      domain.StatusPending,
			Price:       service.Price,
		})
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return uc.conflict(req.StaffID, start)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельная транзакция заняла то же время (конфликт при COMMIT)
		if txmanager.IsSerializationFailure(err) {
			return nil, uc.conflict(req.StaffID, start)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		StaffID:     result.StaffID,
		ServiceID:   result.ServiceID,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		Notes:       result.Notes,
		StartAt:     result.StartAt.In(loc),
		EndAt:       result.EndAt.In(loc),
		DurationMin: service.DurationMin,
		Status:      string(result.Status),
		Price:       result.Price,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// conflict PostgreSQL отменил транзакцию SERIALIZABLE: время занято параллельной записью
func (uc *UseCase) conflict(staffID int64, start time.Time) error {
	uc.logger.Warn("CreateAppointment: serialization conflict for staff=%d, start=%s", staffID, start.Format(time.RFC3339))
	return ErrSlotNotAvailable
}
