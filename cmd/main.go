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

	addInventoryItemHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/add_inventory_item"
	assignTechnicianHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/assign_technician"
	cancelReservationHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/cancel_reservation"
	completeInstallationHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/complete_installation"
	createInstallationHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/create_installation"
	createReservationHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/create_reservation"
	deleteInventoryItemHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/delete_inventory_item"
	getInventoryBySerialHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/get_inventory_by_serial"
	getTechnicianTasksHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/get_technician_tasks"
	getUserReservationsHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/get_user_reservations"
	listAvailableInventoryHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/list_available_inventory"
	lookupNationalIDHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/lookup_national_id"
	requestTransferHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/request_transfer"
	resolveTransferHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/resolve_transfer"
	searchClientsHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/search_clients"
	searchRouterUsersHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/search_router_users"
	updateInventoryItemHandler "github.com/m04kA/SMC-FieldService/internal/api/handlers/update_inventory_item"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/config"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	nationalIDCache "github.com/m04kA/SMC-FieldService/internal/infra/cache/nationalid"
	clientRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/client"
	installationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/installation"
	inventoryRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/inventory"
	reservationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/reservation"
	taskRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/task"
	transferRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/transfer"
	userRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/user"
	"github.com/m04kA/SMC-FieldService/internal/integrations/mikrotik"
	"github.com/m04kA/SMC-FieldService/internal/integrations/reniec"
	"github.com/m04kA/SMC-FieldService/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-FieldService/internal/notifier"
	clientsService "github.com/m04kA/SMC-FieldService/internal/service/clients"
	inventoryService "github.com/m04kA/SMC-FieldService/internal/service/inventory"
	reservationsService "github.com/m04kA/SMC-FieldService/internal/service/reservations"
	tasksService "github.com/m04kA/SMC-FieldService/internal/service/tasks"
	assignTechnicianUC "github.com/m04kA/SMC-FieldService/internal/usecase/assign_technician"
	completeInstallationUC "github.com/m04kA/SMC-FieldService/internal/usecase/complete_installation"
	createInstallationUC "github.com/m04kA/SMC-FieldService/internal/usecase/create_installation"
	createReservationUC "github.com/m04kA/SMC-FieldService/internal/usecase/create_reservation"
	requestTransferUC "github.com/m04kA/SMC-FieldService/internal/usecase/request_transfer"
	resolveTransferUC "github.com/m04kA/SMC-FieldService/internal/usecase/resolve_transfer"
	"github.com/m04kA/SMC-FieldService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
	"github.com/m04kA/SMC-FieldService/pkg/metrics"
	"github.com/m04kA/SMC-FieldService/pkg/txmanager"
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

	log.Info("Starting SMC-FieldService...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(config.Seconds(cfg.Database.ConnMaxLifetime))

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	clientRepository := clientRepo.NewRepository(wrappedDB)
	installationRepository := installationRepo.NewRepository(wrappedDB)
	taskRepository := taskRepo.NewRepository(wrappedDB)
	transferRepository := transferRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	inventoryRepository := inventoryRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Интеграции, каждая опциональна
	var lookup clientsService.NationalIDLookup
	if cfg.Reniec.URL != "" {
		lookup = reniec.NewClient(cfg.Reniec.URL, cfg.Reniec.APIKey, config.Seconds(cfg.Reniec.Timeout))
		log.Info("RENIEC lookup enabled (%s)", cfg.Reniec.URL)
	}

	var router clientsService.RouterClient
	if cfg.Mikrotik.URL != "" {
		router = mikrotik.NewClient(cfg.Mikrotik.URL, cfg.Mikrotik.User, cfg.Mikrotik.Password,
			config.Seconds(cfg.Mikrotik.Timeout))
		log.Info("MikroTik router enabled (%s)", cfg.Mikrotik.URL)
	}

	var cache clientsService.NationalIDCache
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := nationalIDCache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			log.Warn("Redis unavailable, national id cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			cache = nationalIDCache.New(redisClient, config.Seconds(cfg.Redis.TTL))
			log.Info("National id cache enabled (ttl=%ds)", cfg.Redis.TTL)
		}
	}

	// Уведомления отправляются асинхронно после фиксации транзакций
	var dispatcher *notifier.Dispatcher
	var notify interface{ Notify(recipient, text string) }
	if cfg.WhatsApp.Enabled() {
		sender := whatsapp.NewClient(whatsapp.Config{
			BaseURL:       cfg.WhatsApp.BaseURL,
			APIVersion:    cfg.WhatsApp.APIVersion,
			PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
			Token:         cfg.WhatsApp.Token,
		}, config.Seconds(cfg.WhatsApp.Timeout))

		dispatcher = notifier.NewDispatcher(notifier.Config{
			Workers:     cfg.Notifications.Workers,
			QueueSize:   cfg.Notifications.QueueSize,
			SendTimeout: config.Seconds(cfg.WhatsApp.Timeout),
			RetryDelay:  time.Duration(cfg.Notifications.RetryDelayMs) * time.Millisecond,
		}, sender, metricsCollector, log)
		notify = dispatcher
		log.Info("WhatsApp notifications enabled (workers=%d, queue=%d)",
			cfg.Notifications.Workers, cfg.Notifications.QueueSize)
	} else {
		log.Warn("WhatsApp is not configured, notifications disabled")
	}

	// Сервисы
	clientSvc := clientsService.NewService(clientRepository, txMgr, lookup, cache, router, log)
	inventorySvc := inventoryService.NewService(inventoryRepository, installationRepository, txMgr, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	taskSvc := tasksService.NewService(taskRepository, transferRepository, log)

	// Use cases
	createInstallationUseCase := createInstallationUC.NewUseCase(
		clientSvc,
		installationRepository,
		taskRepository,
		userRepository,
		txMgr,
		notify,
		metricsCollector,
		log,
	)
	assignTechnicianUseCase := assignTechnicianUC.NewUseCase(
		installationRepository,
		taskRepository,
		clientRepository,
		userRepository,
		txMgr,
		notify,
		metricsCollector,
		log,
	)
	completeInstallationUseCase := completeInstallationUC.NewUseCase(
		installationRepository,
		taskRepository,
		inventoryRepository,
		clientRepository,
		txMgr,
		notify,
		metricsCollector,
		log,
	)
	requestTransferUseCase := requestTransferUC.NewUseCase(
		taskRepository,
		transferRepository,
		userRepository,
		txMgr,
		metricsCollector,
		log,
	)
	resolveTransferUseCase := resolveTransferUC.NewUseCase(
		transferRepository,
		taskRepository,
		installationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		installationRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Handlers
	createInstallation := createInstallationHandler.NewHandler(createInstallationUseCase, log)
	assignTechnician := assignTechnicianHandler.NewHandler(assignTechnicianUseCase, log)
	completeInstallation := completeInstallationHandler.NewHandler(completeInstallationUseCase, log)
	requestTransfer := requestTransferHandler.NewHandler(requestTransferUseCase, log)
	resolveTransfer := resolveTransferHandler.NewHandler(resolveTransferUseCase, log)
	getTechnicianTasks := getTechnicianTasksHandler.NewHandler(taskSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	searchClients := searchClientsHandler.NewHandler(clientSvc, log)
	lookupNationalID := lookupNationalIDHandler.NewHandler(clientSvc, log)
	searchRouterUsers := searchRouterUsersHandler.NewHandler(clientSvc, log)
	addInventoryItem := addInventoryItemHandler.NewHandler(inventorySvc, log)
	updateInventoryItem := updateInventoryItemHandler.NewHandler(inventorySvc, log)
	deleteInventoryItem := deleteInventoryItemHandler.NewHandler(inventorySvc, log)
	listAvailableInventory := listAvailableInventoryHandler.NewHandler(inventorySvc, log)
	getInventoryBySerial := getInventoryBySerialHandler.NewHandler(inventorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	// --- Инсталляции ---
	admin.HandleFunc("/installations", createInstallation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/installations/{installationId}/assign", assignTechnician.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	admin.HandleFunc("/clients", searchClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/national-id/{dni}", lookupNationalID.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/router/users", searchRouterUsers.Handle).Methods(http.MethodGet)

	// --- Склад ---
	admin.HandleFunc("/inventory", addInventoryItem.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/inventory/available", listAvailableInventory.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/serial/{serial}", getInventoryBySerial.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{itemId:[0-9]+}", updateInventoryItem.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/inventory/{itemId:[0-9]+}", deleteInventoryItem.Handle).Methods(http.MethodDelete)

	// ============================================================
	// TECHNICIAN ROUTES
	// ============================================================

	technician := api.PathPrefix("").Subrouter()
	technician.Use(middleware.RequireRole(domain.RoleTechnician))

	technician.HandleFunc("/installations/{installationId}/complete", completeInstallation.Handle).Methods(http.MethodPost)
	technician.HandleFunc("/tasks/{taskId}/transfers", requestTransfer.Handle).Methods(http.MethodPost)
	technician.HandleFunc("/transfers/{transferId}/resolve", resolveTransfer.Handle).Methods(http.MethodPost)
	technician.HandleFunc("/technicians/me/tasks", getTechnicianTasks.Handle).Methods(http.MethodGet)

	// ============================================================
	// ANY AUTHENTICATED USER
	// ============================================================

	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/mine", getUserReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId:[0-9]+}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Сервер больше не принимает запросы, дожидаемся отправки очереди уведомлений
	if dispatcher != nil {
		drainCtx, drainCancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Notifications.DrainTimeout))
		if err := dispatcher.Stop(drainCtx); err != nil {
			log.Warn("Notification queue not drained: %v", err)
		}
		drainCancel()
	}

	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
