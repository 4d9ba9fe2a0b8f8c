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

	blockSlotHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/block_slot"
	cancelBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	generateSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking"
	getDaySlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_day_slots"
	getSalonBookingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_salon_bookings"
	getScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_services"
	resetSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/reset_slots"
	unblockSlotHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/unblock_slot"
	updateBookingStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
	slotsService "github.com/m04kA/SMC-SalonService/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		bookingRepository  *bookingRepo.Repository
		customerRepository *customerRepo.Repository
		serviceRepository  *serviceRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		salonRepository    *salonRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, slotRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		customerRepository,
		serviceRepository,
		salonRepository,
		log,
	)

	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		scheduleRepository,
		slotRepository,
		salonRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotsSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(slotsSvc, log)
	resetSlots := resetSlotsHandler.NewHandler(slotsSvc, log)
	blockSlot := blockSlotHandler.NewHandler(slotsSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(slotsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг салона
	api.HandleFunc("/salons/{salonId}/services", getServices.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/salons/{salonId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования из публичной формы
	api.HandleFunc("/salons/{salonId}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление слотами ---
	// Административное расписание дня с данными клиентов
	protected.HandleFunc("/salons/{salonId}/day-slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Генерация слотов за период
	protected.HandleFunc("/salons/{salonId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Блокировка и разблокировка отдельных слотов
	protected.HandleFunc("/salons/{salonId}/slots/block", blockSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/slots/unblock", unblockSlot.Handle).Methods(http.MethodPost)

	// Сброс незанятых слотов
	protected.HandleFunc("/salons/{salonId}/slots", resetSlots.Handle).Methods(http.MethodDelete)

	// --- Недельное расписание ---
	protected.HandleFunc("/salons/{salonId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	// Список бронирований салона
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Бронирование по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
