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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	bookAppointmentHandler "github.com/m04kA/SMC-VaccinationService/internal/api/handlers/book_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-VaccinationService/internal/api/handlers/get_appointments"
	getBeneficiariesHandler "github.com/m04kA/SMC-VaccinationService/internal/api/handlers/get_beneficiaries"
	getBeneficiaryHandler "github.com/m04kA/SMC-VaccinationService/internal/api/handlers/get_beneficiary"
	getCenterAvailabilityHandler "github.com/m04kA/SMC-VaccinationService/internal/api/handlers/get_center_availability"
	healthHandler "github.com/m04kA/SMC-VaccinationService/internal/api/handlers/health"
	registerBeneficiaryHandler "github.com/m04kA/SMC-VaccinationService/internal/api/handlers/register_beneficiary"
	"github.com/m04kA/SMC-VaccinationService/internal/api/middleware"
	"github.com/m04kA/SMC-VaccinationService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-VaccinationService/internal/infra/storage/appointment"
	beneficiaryRepo "github.com/m04kA/SMC-VaccinationService/internal/infra/storage/beneficiary"
	appointmentsService "github.com/m04kA/SMC-VaccinationService/internal/service/appointments"
	beneficiariesService "github.com/m04kA/SMC-VaccinationService/internal/service/beneficiaries"
	bookAppointmentUC "github.com/m04kA/SMC-VaccinationService/internal/usecase/book_appointment"
	getCenterAvailabilityUC "github.com/m04kA/SMC-VaccinationService/internal/usecase/get_center_availability"
	registerBeneficiaryUC "github.com/m04kA/SMC-VaccinationService/internal/usecase/register_beneficiary"
	"github.com/m04kA/SMC-VaccinationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VaccinationService/pkg/keylock"
	"github.com/m04kA/SMC-VaccinationService/pkg/logger"
	"github.com/m04kA/SMC-VaccinationService/pkg/metrics"
	"github.com/m04kA/SMC-VaccinationService/pkg/redislock"
	"github.com/m04kA/SMC-VaccinationService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

// DecisionRecorder счётчики решений по регистрации и записи
type DecisionRecorder interface {
	RecordBookingDecision(outcome string)
	RecordRegistrationDecision(outcome string)
}

// Locker блокировка записи по ключам (центр+дата, получатель)
type Locker interface {
	Lock(ctx context.Context, keys ...string) (func(), error)
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

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

	log.Info("Starting SMC-VaccinationService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         DecisionRecorder = metrics.Noop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка над БД: без метрик работает как обычный *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории и transaction manager
	beneficiaryRepository := beneficiaryRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.Database.SerializableRetries)

	// Блокировка записи: Redis для нескольких инстансов, иначе в памяти процесса
	var locker Locker
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		locker = redislock.New(redisClient, time.Duration(cfg.Redis.LockTTL)*time.Second)
		log.Info("Distributed booking lock enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	} else {
		locker = keylock.New()
		log.Info("In-process booking lock enabled")
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	beneficiariesSvc := beneficiariesService.NewService(beneficiaryRepository, appointmentRepository, log)

	// Инициализируем use cases
	registerBeneficiaryUseCase := registerBeneficiaryUC.NewUseCase(
		beneficiaryRepository,
		recorder,
		log,
	)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		beneficiaryRepository,
		txMgr,
		locker,
		recorder,
		time.Duration(cfg.Booking.LockTimeout)*time.Second,
		log,
	)

	getCenterAvailabilityUseCase := getCenterAvailabilityUC.NewUseCase(
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	registerBeneficiary := registerBeneficiaryHandler.NewHandler(registerBeneficiaryUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getBeneficiaries := getBeneficiariesHandler.NewHandler(beneficiariesSvc, log)
	getBeneficiary := getBeneficiaryHandler.NewHandler(beneficiariesSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getCenterAvailability := getCenterAvailabilityHandler.NewHandler(getCenterAvailabilityUseCase, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.BodyLimit(middleware.DefaultBodyLimit))

	// --- Получатели ---
	api.HandleFunc("/beneficiaries", registerBeneficiary.Handle).Methods(http.MethodPost)
	api.HandleFunc("/beneficiaries", getBeneficiaries.Handle).Methods(http.MethodGet)
	api.HandleFunc("/beneficiaries/{beneficiaryId}", getBeneficiary.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// --- Центры ---
	api.HandleFunc("/centers/{center}/availability", getCenterAvailability.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
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
