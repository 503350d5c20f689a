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

	cancelAppointmentHandler "github.com/barbernet/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/barbernet/booking-service/internal/api/handlers/create_appointment"
	createBarberHandler "github.com/barbernet/booking-service/internal/api/handlers/create_barber"
	createServiceHandler "github.com/barbernet/booking-service/internal/api/handlers/create_service"
	createTimeOffHandler "github.com/barbernet/booking-service/internal/api/handlers/create_time_off"
	deleteBarberHandler "github.com/barbernet/booking-service/internal/api/handlers/delete_barber"
	deleteServiceHandler "github.com/barbernet/booking-service/internal/api/handlers/delete_service"
	deleteTimeOffHandler "github.com/barbernet/booking-service/internal/api/handlers/delete_time_off"
	getAppointmentHandler "github.com/barbernet/booking-service/internal/api/handlers/get_appointment"
	getAppointmentByReferenceHandler "github.com/barbernet/booking-service/internal/api/handlers/get_appointment_by_reference"
	getAvailableSlotsHandler "github.com/barbernet/booking-service/internal/api/handlers/get_available_slots"
	getBarberHandler "github.com/barbernet/booking-service/internal/api/handlers/get_barber"
	getServiceHandler "github.com/barbernet/booking-service/internal/api/handlers/get_service"
	getShopHandler "github.com/barbernet/booking-service/internal/api/handlers/get_shop"
	getShopScheduleHandler "github.com/barbernet/booking-service/internal/api/handlers/get_shop_schedule"
	getWorkingHoursHandler "github.com/barbernet/booking-service/internal/api/handlers/get_working_hours"
	listAppointmentsHandler "github.com/barbernet/booking-service/internal/api/handlers/list_appointments"
	listBarbersHandler "github.com/barbernet/booking-service/internal/api/handlers/list_barbers"
	listServicesHandler "github.com/barbernet/booking-service/internal/api/handlers/list_services"
	listTimeOffHandler "github.com/barbernet/booking-service/internal/api/handlers/list_time_off"
	rescheduleAppointmentHandler "github.com/barbernet/booking-service/internal/api/handlers/reschedule_appointment"
	updateBarberHandler "github.com/barbernet/booking-service/internal/api/handlers/update_barber"
	updateServiceHandler "github.com/barbernet/booking-service/internal/api/handlers/update_service"
	updateShopInfoHandler "github.com/barbernet/booking-service/internal/api/handlers/update_shop_info"
	updateShopSettingsHandler "github.com/barbernet/booking-service/internal/api/handlers/update_shop_settings"
	updateWorkingHoursHandler "github.com/barbernet/booking-service/internal/api/handlers/update_working_hours"
	"github.com/barbernet/booking-service/internal/api/middleware"
	"github.com/barbernet/booking-service/internal/config"
	appointmentRepo "github.com/barbernet/booking-service/internal/infra/storage/appointment"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/barbernet/booking-service/internal/infra/storage/catalogsvc"
	settingsRepo "github.com/barbernet/booking-service/internal/infra/storage/settings"
	timeOffRepo "github.com/barbernet/booking-service/internal/infra/storage/timeoff"
	workingHoursRepo "github.com/barbernet/booking-service/internal/infra/storage/workinghours"
	"github.com/barbernet/booking-service/internal/integrations/mailer"
	appointmentsService "github.com/barbernet/booking-service/internal/service/appointments"
	availabilityService "github.com/barbernet/booking-service/internal/service/availability"
	catalogService "github.com/barbernet/booking-service/internal/service/catalog"
	scheduleService "github.com/barbernet/booking-service/internal/service/schedule"
	shopConfigService "github.com/barbernet/booking-service/internal/service/shopconfig"
	createAppointmentUC "github.com/barbernet/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/barbernet/booking-service/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/barbernet/booking-service/internal/usecase/reschedule_appointment"
	"github.com/barbernet/booking-service/pkg/dbmetrics"
	"github.com/barbernet/booking-service/pkg/logger"
	"github.com/barbernet/booking-service/pkg/metrics"
	"github.com/barbernet/booking-service/pkg/simpletxmanager"
	"github.com/barbernet/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Почтовый клиент, пустой host выключает отправку писем
	mailClient := mailer.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, log)
	if mailClient.Enabled() {
		log.Info("Mailer enabled (smtp=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Info("Mailer disabled: smtp host is not configured")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointments *appointmentRepo.Repository
		barbers      *barberRepo.Repository
		services     *serviceRepo.Repository
		workingHours *workingHoursRepo.Repository
		timeOffs     *timeOffRepo.Repository
		settings     *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointments = appointmentRepo.NewRepository(wrappedDB)
		barbers = barberRepo.NewRepository(wrappedDB)
		services = serviceRepo.NewRepository(wrappedDB)
		workingHours = workingHoursRepo.NewRepository(wrappedDB)
		timeOffs = timeOffRepo.NewRepository(wrappedDB)
		settings = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointments = appointmentRepo.NewRepository(db)
		barbers = barberRepo.NewRepository(db)
		services = serviceRepo.NewRepository(db)
		workingHours = workingHoursRepo.NewRepository(db)
		timeOffs = timeOffRepo.NewRepository(db)
		settings = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(workingHours, timeOffs, appointments, settings, log)
	appointmentsSvc := appointmentsService.NewService(appointments, barbers, services, mailClient, log)
	scheduleSvc := scheduleService.NewService(workingHours, timeOffs, barbers, txMgr, log)
	catalogSvc := catalogService.NewService(barbers, services, workingHours, appointments, log)
	shopConfigSvc := shopConfigService.NewService(settings, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointments,
		barbers,
		services,
		availabilitySvc,
		mailClient,
		txMgr,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointments,
		barbers,
		services,
		availabilitySvc,
		mailClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		barbers,
		services,
		availabilitySvc,
		log,
	)

	// Инициализируем handlers
	getShop := getShopHandler.NewHandler(shopConfigSvc, log)
	getShopSchedule := getShopScheduleHandler.NewHandler(scheduleSvc, log)
	listBarbersPublic := listBarbersHandler.NewHandler(catalogSvc, log, true)
	listServicesPublic := listServicesHandler.NewHandler(catalogSvc, log, true)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointmentByReference := getAppointmentByReferenceHandler.NewHandler(appointmentsSvc, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	listBarbersAdmin := listBarbersHandler.NewHandler(catalogSvc, log, false)
	getBarber := getBarberHandler.NewHandler(catalogSvc, log)
	createBarber := createBarberHandler.NewHandler(catalogSvc, log)
	updateBarber := updateBarberHandler.NewHandler(catalogSvc, log)
	deleteBarber := deleteBarberHandler.NewHandler(catalogSvc, log)
	listServicesAdmin := listServicesHandler.NewHandler(catalogSvc, log, false)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createTimeOff := createTimeOffHandler.NewHandler(scheduleSvc, log)
	listTimeOff := listTimeOffHandler.NewHandler(scheduleSvc, log)
	deleteTimeOff := deleteTimeOffHandler.NewHandler(scheduleSvc, log)
	updateShopSettings := updateShopSettingsHandler.NewHandler(shopConfigSvc, log)
	updateShopInfo := updateShopInfoHandler.NewHandler(shopConfigSvc, log)

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

	// Информация о магазине
	api.HandleFunc("/shop", getShop.Handle).Methods(http.MethodGet)

	// Агрегированное недельное расписание магазина
	api.HandleFunc("/schedule", getShopSchedule.Handle).Methods(http.MethodGet)

	// Каталог: только активные барберы и услуги
	api.HandleFunc("/barbers", listBarbersPublic.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServicesPublic.Handle).Methods(http.MethodGet)

	// Доступные слоты барбера
	api.HandleFunc("/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Проверка записи по публичному коду из письма
	api.HandleFunc("/appointments/{reference}",
		getAppointmentByReference.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// --- Барберы ---
	admin.HandleFunc("/barbers", listBarbersAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/barbers/{barberId}", getBarber.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers/{barberId}", updateBarber.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/barbers/{barberId}", deleteBarber.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	admin.HandleFunc("/services", listServicesAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Рабочие часы и выходные ---
	admin.HandleFunc("/barbers/{barberId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers/{barberId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/barbers/{barberId}/time-off", listTimeOff.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers/{barberId}/time-off", createTimeOff.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/barbers/{barberId}/time-off/{date}", deleteTimeOff.Handle).Methods(http.MethodDelete)

	// --- Настройки магазина ---
	admin.HandleFunc("/shop/settings", updateShopSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/shop/info", updateShopInfo.Handle).Methods(http.MethodPut)

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

	log.Info("Server exited")
}
