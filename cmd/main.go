package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	approveBookingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/cancel_booking"
	createBlockedDateHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/create_blocked_date"
	createBookingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/create_booking"
	deleteBlockedDateHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/delete_blocked_date"
	deleteBookingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_available_slots"
	getBlockedDatesHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_blocked_dates"
	getBookingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_booking_stats"
	getBookingsByEmailHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_bookings_by_email"
	getCurrentWorkingHallsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_current_working_halls"
	getDashboardStatsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_dashboard_stats"
	getEmployeeBookingsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_employee_bookings"
	getHallBookedSlotsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_hall_booked_slots"
	getHallBookingsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_hall_bookings"
	getHallCategoriesHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_hall_categories"
	getPendingApprovalsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_pending_approvals"
	getUpcomingBookingsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_upcoming_bookings"
	rejectBookingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/reject_booking"
	sendOTPHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/send_otp"
	updateSlotStatusHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/update_slot_status"
	verifyOTPHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/verify_otp"
	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HallBookingService/internal/config"
	"github.com/m04kA/SMC-HallBookingService/internal/infra/cache/otplimiter"
	blockedDateRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/blockeddate"
	bookingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/booking"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	otpRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/otp"
	sessionRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-HallBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-HallBookingService/internal/integrations/notifyqueue"
	"github.com/m04kA/SMC-HallBookingService/internal/jobs"
	availabilityService "github.com/m04kA/SMC-HallBookingService/internal/service/availability"
	blockedDatesService "github.com/m04kA/SMC-HallBookingService/internal/service/blockeddates"
	bookingsService "github.com/m04kA/SMC-HallBookingService/internal/service/bookings"
	notificationsService "github.com/m04kA/SMC-HallBookingService/internal/service/notifications"
	otpService "github.com/m04kA/SMC-HallBookingService/internal/service/otp"
	slotsService "github.com/m04kA/SMC-HallBookingService/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/logger"
	"github.com/m04kA/SMC-HallBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HallBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-HallBookingService...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Invalid timezone %q: %v", cfg.App.Timezone, err)
	}

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

	// Репозитории работают либо через обёртку с метриками, либо напрямую с *sql.DB
	var (
		executor dbmetrics.DBExecutor
		txMgr    *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	slotRepository := slotRepo.NewRepository(executor)
	hallRepository := hallRepo.NewRepository(executor)
	sessionRepository := sessionRepo.NewRepository(executor)
	blockedDateRepository := blockedDateRepo.NewRepository(executor)
	otpRepository := otpRepo.NewRepository(executor)

	// Redis нужен только для ограничения частоты отправки OTP; без него лимит отключен
	var otpLimiter otpService.RateLimiter
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, OTP throttling disabled: %v", cfg.Redis.Addr, err)
			_ = rdb.Close()
			rdb = nil
		} else {
			otpLimiter = otplimiter.New(rdb, cfg.OTP.SendLimit, time.Duration(cfg.OTP.SendWindowSecs)*time.Second)
			log.Info("OTP throttling enabled (limit=%d per %ds)", cfg.OTP.SendLimit, cfg.OTP.SendWindowSecs)
		}
		cancelPing()
	}

	// Почта
	mailSender, err := mailer.New(mailer.Config{
		Provider:         cfg.Notifications.Provider,
		FromEmail:        cfg.Notifications.FromEmail,
		FromName:         cfg.Notifications.FromName,
		SendGridAPIKey:   cfg.Notifications.SendGridAPIKey,
		MailerSendAPIKey: cfg.Notifications.MailerSendAPIKey,
		Timeout:          time.Duration(cfg.Notifications.SendTimeout) * time.Second,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize mailer: %v", err)
	}
	log.Info("Mailer initialized (provider=%s)", cfg.Notifications.Provider)

	notificationSvc := notificationsService.NewService(
		mailSender,
		metricsCollector,
		cfg.Notifications.MaxAttempts,
		time.Duration(cfg.Notifications.BackoffMillis)*time.Millisecond,
		log,
	)

	// Уведомления: через очередь RabbitMQ или синхронно с повторами
	var (
		dispatcher     bookingsService.Dispatcher = notificationSvc
		publisher      *notifyqueue.Publisher
		consumerCancel context.CancelFunc = func() {}
		consumerWg     sync.WaitGroup
	)
	if cfg.Notifications.Mode == "queue" {
		publisher = notifyqueue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		dispatcher = publisher

		consumer := notifyqueue.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, cfg.RabbitMQ.Prefetch, notificationSvc, log)
		var consumerCtx context.Context
		consumerCtx, consumerCancel = context.WithCancel(context.Background())
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			consumer.Run(consumerCtx)
		}()
		log.Info("Notifications dispatched via RabbitMQ queue %q", cfg.RabbitMQ.Queue)
	} else {
		log.Info("Notifications dispatched directly (max_attempts=%d)", cfg.Notifications.MaxAttempts)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(slotRepository, loc, cfg.Booking.SuggestionWindow, log)
	blockedDatesSvc := blockedDatesService.NewService(blockedDateRepository, hallRepository, txMgr, log)
	slotsSvc := slotsService.NewService(slotRepository, log)
	otpSvc := otpService.NewService(
		otpRepository,
		otpLimiter,
		mailSender,
		txMgr,
		cfg.OTP.AllowedDomains,
		time.Duration(cfg.OTP.TTLMinutes)*time.Minute,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		hallRepository,
		availabilitySvc,
		dispatcher,
		txMgr,
		metricsCollector,
		loc,
		cfg.Booking.SuggestionCount,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		hallRepository,
		sessionRepository,
		blockedDatesSvc,
		txMgr,
		log,
	)

	// Фоновые задачи
	scheduler := jobs.NewScheduler(loc, log)
	if cfg.Jobs.Enabled {
		if err := scheduler.AddOTPCleanup(cfg.Jobs.OTPCleanupSpec, otpSvc); err != nil {
			log.Fatal("Failed to schedule OTP cleanup: %v", err)
		}
		scheduler.Start()
		log.Info("Scheduler started (otp_cleanup=%q)", cfg.Jobs.OTPCleanupSpec)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	getUpcomingBookings := getUpcomingBookingsHandler.NewHandler(bookingSvc, log)
	getEmployeeBookings := getEmployeeBookingsHandler.NewHandler(bookingSvc, log)
	getBookingsByEmail := getBookingsByEmailHandler.NewHandler(bookingSvc, log)
	getPendingApprovals := getPendingApprovalsHandler.NewHandler(bookingSvc, log)
	getHallBookedSlots := getHallBookedSlotsHandler.NewHandler(bookingSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(bookingSvc, log)
	getHallBookings := getHallBookingsHandler.NewHandler(bookingSvc, log)
	getCurrentWorkingHalls := getCurrentWorkingHallsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotsSvc, log)
	updateSlotStatus := updateSlotStatusHandler.NewHandler(slotsSvc, log)
	getHallCategories := getHallCategoriesHandler.NewHandler()
	createBlockedDate := createBlockedDateHandler.NewHandler(blockedDatesSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(blockedDatesSvc, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(blockedDatesSvc, log)
	sendOTP := sendOTPHandler.NewHandler(otpSvc, log)
	verifyOTP := verifyOTPHandler.NewHandler(otpSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-stats", getBookingStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/upcoming-bookings", getUpcomingBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employee-bookings", getEmployeeBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings-by-email", getBookingsByEmail.Handle).Methods(http.MethodGet)

	// --- Залы и слоты ---
	api.HandleFunc("/halls/{hallId:[0-9]+}/booked-slots", getHallBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hall-categories", getHallCategories.Handle).Methods(http.MethodGet)

	// --- OTP ---
	api.HandleFunc("/send-otp", sendOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/verify-otp", verifyOTP.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Code header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth)

	// --- Переходы состояний ---
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/approve", approveBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/reject", rejectBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/pending-approvals", getPendingApprovals.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard-stats", getDashboardStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/current-working-halls", getCurrentWorkingHalls.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/halls/{hallId:[0-9]+}/bookings", getHallBookings.Handle).Methods(http.MethodGet)

	// --- Реестр слотов ---
	admin.HandleFunc("/slots/{slotId:[0-9]+}/status", updateSlotStatus.Handle).Methods(http.MethodPost)

	// --- Заблокированные даты ---
	admin.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/by-date", getBlockedDates.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates/{blockedDateId:[0-9]+}", deleteBlockedDate.Handle).Methods(http.MethodDelete)

	// CORS и восстановление после паники оборачивают весь роутер
	handler := ghandlers.CORS(
		ghandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		ghandlers.AllowedHeaders([]string{"Content-Type", middleware.AdminCodeHeader}),
	)(r)
	handler = ghandlers.RecoveryHandler(
		ghandlers.RecoveryLogger(log),
		ghandlers.PrintRecoveryStack(true),
	)(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if cfg.Jobs.Enabled {
		scheduler.Stop(shutdownCtx)
		log.Info("Scheduler stopped")
	}

	consumerCancel()
	consumerWg.Wait()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Warn("Failed to close RabbitMQ publisher: %v", err)
		}
	}

	if rdb != nil {
		_ = rdb.Close()
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
