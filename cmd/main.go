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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/DMar-BookingService/internal/api"
	getBookingHistoryHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/get_booking_history"
	getCatalogHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/get_catalog"
	getOrderHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/get_order"
	getServiceContentHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/get_service_content"
	getTranslationsHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/get_translations"
	setLanguageHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/set_language"
	startBookingHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/start_booking"
	submitBookingHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/submit_booking"
	wizardHandler "github.com/m04kA/DMar-BookingService/internal/api/handlers/wizard"
	"github.com/m04kA/DMar-BookingService/internal/config"
	"github.com/m04kA/DMar-BookingService/internal/domain"
	historyRepo "github.com/m04kA/DMar-BookingService/internal/infra/storage/history"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
	bookingService "github.com/m04kA/DMar-BookingService/internal/service/booking"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
	"github.com/m04kA/DMar-BookingService/internal/service/translations"
	loadCatalogUC "github.com/m04kA/DMar-BookingService/internal/usecase/load_catalog"
	startBookingUC "github.com/m04kA/DMar-BookingService/internal/usecase/start_booking"
	submitBookingUC "github.com/m04kA/DMar-BookingService/internal/usecase/submit_booking"
	"github.com/m04kA/DMar-BookingService/pkg/logger"
	"github.com/m04kA/DMar-BookingService/pkg/metrics"
)

// historyStore хранилище локальной истории (memory или postgres)
type historyStore interface {
	Append(ctx context.Context, sessionID string, record domain.HistoryRecord) error
	List(ctx context.Context, sessionID string) ([]domain.HistoryRecord, error)
}

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

	log.Info("Starting DMar-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// Интерфейсы остаются nil при выключенных метриках, а не typed-nil указателем.
	var (
		metricsCollector *metrics.Metrics
		backendRecorder  backend.Recorder
		submitRecorder   submitBookingUC.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		backendRecorder = metricsCollector
		submitRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента CRUD backend
	backendClient := backend.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		cfg.Backend.SessionHeader,
		log,
		backendRecorder,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем хранилище локальной истории
	var history historyStore
	switch cfg.History.Driver {
	case config.HistoryDriverPostgres:
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

		repo := historyRepo.NewRepository(db)
		if err := repo.Migrate(context.Background()); err != nil {
			log.Fatal("Failed to migrate history schema: %v", err)
		}
		history = repo

	default:
		history = historyRepo.NewMemoryRepository()
	}
	log.Info("History storage initialized (driver=%s)", cfg.History.Driver)

	// Инициализируем сервисы
	sessionRegistry := sessions.NewRegistry(cfg.I18n.DefaultLanguage)
	stopJanitorCh := make(chan struct{})
	go sessionRegistry.RunJanitor(
		time.Duration(cfg.Sessions.IdleTTL)*time.Second,
		time.Duration(cfg.Sessions.CleanupInterval)*time.Second,
		stopJanitorCh,
		func(n int) { log.Info("Evicted %d idle sessions", n) },
	)
	log.Info("Session janitor started (idle_ttl=%ds, interval=%ds)", cfg.Sessions.IdleTTL, cfg.Sessions.CleanupInterval)
	translationSvc := translations.NewService(
		backendClient,
		cfg.I18n.DefaultLanguage,
		cfg.I18n.Supported,
		log,
	)
	bookingSvc := bookingService.NewService(
		sessionRegistry,
		history,
		backendClient,
		translationSvc,
		log,
	)

	// Инициализируем use cases
	loadCatalogUseCase := loadCatalogUC.NewUseCase(backendClient, log)
	startBookingUseCase := startBookingUC.NewUseCase(loadCatalogUseCase, sessionRegistry, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		sessionRegistry,
		backendClient,
		history,
		submitRecorder,
		log,
	)

	// Инициализируем handlers
	handlers := api.Handlers{
		GetCatalog:        getCatalogHandler.NewHandler(loadCatalogUseCase, bookingSvc, log),
		GetServiceContent: getServiceContentHandler.NewHandler(backendClient, log),
		GetTranslations:   getTranslationsHandler.NewHandler(translationSvc, bookingSvc, log),
		SetLanguage:       setLanguageHandler.NewHandler(bookingSvc, log),
		StartBooking:      startBookingHandler.NewHandler(startBookingUseCase, log),
		Wizard:            wizardHandler.NewHandler(bookingSvc, log),
		SubmitBooking:     submitBookingHandler.NewHandler(submitBookingUseCase, log),
		GetHistory:        getBookingHistoryHandler.NewHandler(bookingSvc, log),
		GetOrder:          getOrderHandler.NewHandler(bookingSvc, log),
	}

	// Настраиваем роутер
	routerOpts := api.RouterOptions{}
	if cfg.Metrics.Enabled {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(handlers, routerOpts)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	close(stopJanitorCh)

	log.Info("Server stopped gracefully")
}
