package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/create_appointment"
	createOffDayHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/create_off_day"
	deleteOffDayHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/delete_off_day"
	getAppointmentHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_appointment"
	getBusinessHoursHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_business_hours"
	getDaySlotsHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_day_slots"
	getMonthAvailabilityHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_month_availability"
	getSchedulingConfigHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_scheduling_config"
	healthHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/health"
	listOffDaysHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/list_off_days"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/update_business_hours"
	updateSchedulingConfigHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/update_scheduling_config"
	"github.com/m04kA/SMC-SalonAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-SalonAvailability/internal/config"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/appointment"
	businessHoursRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/business_hours"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
	offDayRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/off_day"
	schedulingConfigRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/scheduling_config"
	appointmentsService "github.com/m04kA/SMC-SalonAvailability/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-SalonAvailability/internal/service/schedule"
	schedulingService "github.com/m04kA/SMC-SalonAvailability/internal/service/scheduling"
	createAppointmentUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_appointment"
	getDaySlotsUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_day_slots"
	getMonthAvailabilityUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_month_availability"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/metrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonAvailability...")
	log.Info("Configuration loaded (timezone=%s, step=%dm, horizon=%dd)",
		cfg.Scheduling.Timezone, cfg.Scheduling.StepMinutes, cfg.Scheduling.HorizonDays)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	businessHoursRepository := businessHoursRepo.NewRepository(wrappedDB)
	offDayRepository := offDayRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	schedulingConfigRepository := schedulingConfigRepo.NewRepository(wrappedDB)

	healthChecks := map[string]healthHandler.Pinger{"database": wrappedDB}

	// Кэш расписания
	var scheduleCache scheduleService.Cache
	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

		switch cfg.Cache.Backend {
		case config.CacheBackendRedis:
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer redisClient.Close()

			redisCache := cache.NewRedisCache(redisClient, cfg.Cache.KeyPrefix, ttl, log, metricsCollector)
			healthChecks["redis"] = redisCache
			scheduleCache = redisCache
			log.Info("Schedule cache: redis at %s (ttl=%s)", cfg.Redis.Addr, ttl)

		default:
			lruCache, err := cache.NewLRUCache(cfg.Cache.Size, ttl, log, metricsCollector)
			if err != nil {
				log.Fatal("Failed to create LRU cache: %v", err)
			}
			scheduleCache = lruCache
			log.Info("Schedule cache: in-process LRU (size=%d, ttl=%s)", cfg.Cache.Size, ttl)
		}
	}

	location := cfg.Scheduling.Location()

	// Сервисы
	scheduleSvc := scheduleService.NewService(businessHoursRepository, offDayRepository, scheduleCache, location, log)
	schedulingSvc := schedulingService.NewService(schedulingConfigRepository, domain.SchedulingConfig{
		StepMinutes:    cfg.Scheduling.StepMinutes,
		HorizonDays:    cfg.Scheduling.HorizonDays,
		MinLeadMinutes: cfg.Scheduling.MinLeadMinutes,
	}, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, location, log)

	// Часы работы по умолчанию, если таблица пустая
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := scheduleSvc.SeedDefaults(seedCtx); err != nil {
		seedCancel()
		log.Fatal("Failed to seed business hours: %v", err)
	}
	seedCancel()

	// Use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		schedulingSvc,
		scheduleSvc,
		log,
	)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		schedulingSvc,
		scheduleSvc,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		schedulingSvc,
		scheduleSvc,
		txMgr,
		log,
	)

	// Handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(scheduleSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(scheduleSvc, log)
	listOffDays := listOffDaysHandler.NewHandler(scheduleSvc, log)
	createOffDay := createOffDayHandler.NewHandler(scheduleSvc, log)
	deleteOffDay := deleteOffDayHandler.NewHandler(scheduleSvc, log)
	getSchedulingConfig := getSchedulingConfigHandler.NewHandler(schedulingSvc, log)
	updateSchedulingConfig := updateSchedulingConfigHandler.NewHandler(schedulingSvc, log)
	health := healthHandler.NewHandler(healthChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/staff/{staffId}/services/{serviceId}/slots", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/services/{serviceId}/availability", getMonthAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/off-days", listOffDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/scheduling-config", getSchedulingConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/business-hours/{dayOfWeek}", updateBusinessHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/off-days", createOffDay.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/off-days/{offDayId}", deleteOffDay.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/scheduling-config", updateSchedulingConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
