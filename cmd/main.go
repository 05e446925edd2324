package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	createBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_booking"
	deleteAvailabilityRuleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_availability_rule"
	exportBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/export_bookings"
	getAllBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_all_bookings"
	getAvailabilityRulesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_availability_rules"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	setAvailabilityHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/set_availability"
	updateBookingStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/snapshot"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/notify"
	availabilityService "github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище снапшотов состояния
	var snapshotStore snapshot.Store

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Snapshot store: postgres (host=%s, port=%d, db=%s)",
			cfg.Storage.Database.Host, cfg.Storage.Database.Port, cfg.Storage.Database.DBName)

		snapshotStore = snapshot.NewPostgresStore(db)

	case config.StorageDriverFile:
		snapshotStore = snapshot.NewFileStore(cfg.Storage.File.Path)
		log.Info("Snapshot store: file (%s)", cfg.Storage.File.Path)
	}

	// Инициализируем in-memory репозитории
	bookingRepository := bookingRepo.NewRepository()
	availabilityRepository := availabilityRepo.NewRepository()

	// Восстанавливаем состояние из снапшота.
	// Слоты не восстанавливаются - они регенерируются из часов, поэтому
	// рестарт сдвигает горизонт, а записи бронирований переживают его
	// как исторические данные.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	snap, err := snapshotStore.Load(loadCtx)
	loadCancel()
	switch {
	case err == nil:
		bookingRepository.Restore(snap.Bookings)
		availabilityRepository.Restore(snap.AvailabilityRules)
		log.Info("Restored state from snapshot: %d bookings, %d rules (last updated %s)",
			len(snap.Bookings), len(snap.AvailabilityRules), snap.LastUpdated.Format(time.RFC3339))
	case errors.Is(err, snapshot.ErrSnapshotNotFound):
		log.Info("No snapshot found, starting with empty state")
	default:
		// Поврежденный или недоступный снапшот не мешает старту
		log.Warn("Failed to load snapshot, starting with empty state: %v", err)
	}

	// Инициализируем persister снапшотов
	var saveErrCounter snapshot.SaveErrorCounter
	if cfg.Metrics.Enabled {
		saveErrCounter = metricsCollector.SnapshotSaveErrsTotal
	}
	persister := snapshot.NewPersister(snapshotStore, bookingRepository, availabilityRepository, saveErrCounter, log)

	// Инициализируем notifier (имитация отправки приглашений в календарь)
	var inviteCounter notify.InviteCounter
	if cfg.Metrics.Enabled {
		inviteCounter = metricsCollector.CalendarInvitesTotal
	}
	notifier := notify.New(log, inviteCounter)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		persister,
		cfg.Booking.HorizonWeeks,
		log,
	)
	if cfg.Metrics.Enabled {
		createBookingUseCase.WithCreatedCounter(metricsCollector.BookingsCreatedTotal)
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		cfg.Booking.HorizonWeeks,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		notifier,
		persister,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		persister,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailabilityRules := getAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	deleteAvailabilityRule := deleteAvailabilityRuleHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиентский календарь ---
	// Сетка слотов с эффективной доступностью (клиент опрашивает её периодически)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание заявки на бронирование
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// --- Админка ---
	// Список всех заявок (от новых к старым)
	api.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// CSV выгрузка (регистрируется до роута со статусом, чтобы не конфликтовать по шаблону)
	api.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// Решение по заявке (approved/denied)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Правила доступности
	api.HandleFunc("/availability", setAvailability.Handle).Methods(http.MethodPut)
	api.HandleFunc("/availability", getAvailabilityRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/{ruleId}", deleteAvailabilityRule.Handle).Methods(http.MethodDelete)

	// Календарь и админка - браузерные клиенты, включаем CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
