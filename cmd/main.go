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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/cancel_booking"
	checkConflictsHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/check_conflicts"
	createBookingHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/get_availability"
	getBookingHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/get_client_bookings"
	getStaffBookingsHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/get_staff_bookings"
	rescheduleBookingHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/reschedule_booking"
	updatePaymentHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/update_payment"
	updateStatusHandler "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/handlers/update_status"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/api/middleware"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/config"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/cache"
	bookingRepo "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/storage/booking"
	shiftRepo "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/storage/shift"
	directoryClient "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/integrations/directory"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
	bookingsService "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/service/bookings"
	checkConflictsUC "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/check_conflicts"
	createBookingUC "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/create_booking"
	getAvailabilityUC "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/get_availability"
	rescheduleBookingUC "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/reschedule_booking"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/dbmetrics"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/logger"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/metrics"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/simpletxmanager"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/txmanager"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

func main() {
	// Локальные переменные окружения (.env не обязателен)
	_ = godotenv.Load()

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

	log.Info("Starting SpaSchedulingService...")
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

	// Кэш сеток доступности (если включен)
	var gridCache interface {
		Get(ctx context.Context, staffID int64, date time.Time, granularity int) ([]domain.AvailabilitySlot, error)
		Set(ctx context.Context, staffID int64, date time.Time, granularity int, slots []domain.AvailabilitySlot) error
		Invalidate(ctx context.Context, staffID int64, date time.Time) error
	} = cache.Noop{}

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		gridCache = cache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Клиент справочника персонала, клиентов и услуг
	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)", cfg.Directory.URL, cfg.Directory.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		shiftRepository   *shiftRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		shiftRepository = shiftRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Канонический движок расписания
	resolver := schedule.NewResolver(shiftRepository, bookingRepository)
	detector := schedule.NewDetector(shiftRepository, bookingRepository)
	suggester := schedule.NewSuggester(bookingRepository)

	suggestParams := schedule.SuggestParams{
		BusinessStart:      types.MustTimeString(fmt.Sprintf("%02d:00", cfg.Booking.BusinessStartHour)),
		BusinessEnd:        types.MustTimeString(fmt.Sprintf("%02d:00", cfg.Booking.BusinessEndHour)),
		GranularityMinutes: cfg.Booking.GranularityMinutes,
		MaxResults:         cfg.Booking.SuggestionMax,
	}

	// Сервис бронирований
	bookingSvc := bookingsService.NewService(bookingRepository, gridCache, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		detector,
		directory,
		txMgr,
		gridCache,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		detector,
		directory,
		txMgr,
		gridCache,
		log,
	)
	checkConflictsUseCase := checkConflictsUC.NewUseCase(detector, suggester, suggestParams, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		resolver,
		gridCache,
		cfg.Booking.BusinessStartHour,
		cfg.Booking.BusinessEndHour,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	updatePayment := updatePaymentHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступности мастера
	api.HandleFunc("/staff/{staffId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Проверка кандидата на конфликты
	api.HandleFunc("/conflicts/check", checkConflicts.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", rescheduleBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/payment", updatePayment.Handle).Methods(http.MethodPatch)

	// --- Истории ---
	protected.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

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
