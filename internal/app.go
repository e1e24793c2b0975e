package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	logger_adapter "settlements-service/internal/adapters/logger"
	postgres_adapter "settlements-service/internal/adapters/postgres"
	rabbitmq_adapter "settlements-service/internal/adapters/rabbitmq"
	"settlements-service/internal/adapters/rest"
	"settlements-service/internal/configs"
	"settlements-service/internal/constants"
	"settlements-service/internal/core/port"
	"settlements-service/internal/core/usecase"
	fluentlogger "settlements-service/pkg/fluent_logger"
	"settlements-service/pkg/postgres"
	"settlements-service/pkg/rabbitmq/rabbitmq_common"
	"settlements-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	rabbitConnManager  *rabbitmq_common.ConnectionManager
	leadEventsProducer *rabbitmq_producer.Publisher
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    int32(appConfig.Database.MaxConns),
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	// --- 4. ИСХОДЯЩИЕ АДАПТЕРЫ (Postgres) ---
	blockRepository, err := postgres_adapter.NewBlockRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create block repository: %w", err)
	}
	houseStorage, err := postgres_adapter.NewHouseStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create house storage adapter: %w", err)
	}
	plotStorage, err := postgres_adapter.NewPlotStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create plot storage adapter: %w", err)
	}
	leadStorage, err := postgres_adapter.NewLeadStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create lead storage adapter: %w", err)
	}
	favoritesRepository, err := postgres_adapter.NewFavoritesRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create favorites repository: %w", err)
	}
	viewedRepository, err := postgres_adapter.NewViewedRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create viewed repository: %w", err)
	}
	newsStorage, err := postgres_adapter.NewNewsStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create news storage adapter: %w", err)
	}
	mediaStorage, err := postgres_adapter.NewMediaStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create media storage adapter: %w", err)
	}
	profileRepository, err := postgres_adapter.NewProfileRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	roleRepository, err := postgres_adapter.NewRoleRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create role repository: %w", err)
	}
	settingsRepository, err := postgres_adapter.NewSettingsRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}
	appLogger.Info("Postgres storage adapters initialized.", nil)

	// --- 5. ИСХОДЯЩИЕ АДАПТЕРЫ (RabbitMQ, опционально) ---
	// Без брокера обращения просто сохраняются в БД, уведомления не уходят.
	var leadEvents port.LeadEventsPort
	var connManager *rabbitmq_common.ConnectionManager
	var leadEventsProducer *rabbitmq_producer.Publisher
	if appConfig.RabbitMQ.Enabled {
		connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
		connManager, err = rabbitmq_common.NewManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		producerCfg := rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.EventsExchangeName,
			ExchangeType:             constants.EventsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,

			Logger: rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}
		leadEventsProducer, err = rabbitmq_producer.NewPublisher(producerCfg, connManager)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			connManager.Close()
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}

		leadEvents, err = rabbitmq_adapter.NewLeadEventsAdapter(leadEventsProducer)
		if err != nil {
			appLogger.Error("Failed to create lead events adapter", err, nil)
			connManager.Close()
			dbPool.Close()
			return nil, err
		}
		appLogger.Info("RabbitMQ Event Producer initialized.", nil)
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 6. USE CASES (ядро бизнес-логики) ---
	listBlocksUseCase := usecase.NewListBlocksUseCase(blockRepository)
	createBlockUseCase := usecase.NewCreateBlockUseCase(blockRepository)
	updateBlockContentUseCase := usecase.NewUpdateBlockContentUseCase(blockRepository)
	setBlockEnabledUseCase := usecase.NewSetBlockEnabledUseCase(blockRepository)
	moveBlockUseCase := usecase.NewMoveBlockUseCase(blockRepository)
	deleteBlockUseCase := usecase.NewDeleteBlockUseCase(blockRepository)

	findHousesUseCase := usecase.NewFindHousesUseCase(houseStorage)
	getHouseDetailsUseCase := usecase.NewGetHouseDetailsUseCase(houseStorage)
	findPlotsUseCase := usecase.NewFindPlotsUseCase(plotStorage)
	getPlotDetailsUseCase := usecase.NewGetPlotDetailsUseCase(plotStorage)
	getCatalogMapUseCase := usecase.NewGetCatalogMapUseCase(houseStorage, plotStorage)

	submitLeadUseCase := usecase.NewSubmitLeadUseCase(leadStorage, leadEvents)
	manageLeadsUseCase := usecase.NewManageLeadsUseCase(leadStorage)

	getNewsFeedUseCase := usecase.NewGetNewsFeedUseCase(newsStorage)
	getNewsDetailsUseCase := usecase.NewGetNewsDetailsUseCase(newsStorage)
	getDocumentsUseCase := usecase.NewGetDocumentsUseCase(mediaStorage)
	getGalleryUseCase := usecase.NewGetGalleryUseCase(mediaStorage)
	getSiteSettingsUseCase := usecase.NewGetSiteSettingsUseCase(settingsRepository)
	getPageSettingsUseCase := usecase.NewGetPageSettingsUseCase(settingsRepository)

	addToFavoritesUseCase := usecase.NewAddToFavoritesUseCase(favoritesRepository)
	removeFromFavoritesUseCase := usecase.NewRemoveFromFavoritesUseCase(favoritesRepository)
	getUserFavoritesUseCase := usecase.NewGetUserFavoritesUseCase(favoritesRepository)
	getUserFavoriteIDsUseCase := usecase.NewGetUserFavoriteIDsUseCase(favoritesRepository)
	markHouseViewedUseCase := usecase.NewMarkHouseViewedUseCase(viewedRepository)
	getViewedHousesUseCase := usecase.NewGetViewedHousesUseCase(viewedRepository)
	getProfileUseCase := usecase.NewGetProfileUseCase(profileRepository)
	updateProfileUseCase := usecase.NewUpdateProfileUseCase(profileRepository)

	manageHousesUseCase := usecase.NewManageHousesUseCase(houseStorage)
	managePlotsUseCase := usecase.NewManagePlotsUseCase(plotStorage)
	manageNewsUseCase := usecase.NewManageNewsUseCase(newsStorage)
	manageMediaUseCase := usecase.NewManageMediaUseCase(mediaStorage)
	manageSettingsUseCase := usecase.NewManageSettingsUseCase(settingsRepository)
	manageUsersUseCase := usecase.NewManageUsersUseCase(profileRepository, roleRepository)

	appLogger.Info("All use cases initialized.", nil)

	// --- 7. REST API Server ---
	blocksHandler := rest.NewBlocksHandler(
		listBlocksUseCase, createBlockUseCase, updateBlockContentUseCase,
		setBlockEnabledUseCase, moveBlockUseCase, deleteBlockUseCase)
	catalogHandler := rest.NewCatalogHandler(
		findHousesUseCase, getHouseDetailsUseCase, findPlotsUseCase,
		getPlotDetailsUseCase, getCatalogMapUseCase)
	leadsHandler := rest.NewLeadsHandler(submitLeadUseCase)
	contentHandler := rest.NewContentHandler(
		getNewsFeedUseCase, getNewsDetailsUseCase, getDocumentsUseCase,
		getGalleryUseCase, getSiteSettingsUseCase, getPageSettingsUseCase)
	userHandler := rest.NewUserHandler(
		addToFavoritesUseCase, removeFromFavoritesUseCase, getUserFavoritesUseCase,
		getUserFavoriteIDsUseCase, markHouseViewedUseCase, getViewedHousesUseCase,
		getProfileUseCase, updateProfileUseCase)
	adminCatalogHandler := rest.NewAdminCatalogHandler(manageHousesUseCase, managePlotsUseCase)
	adminContentHandler := rest.NewAdminContentHandler(manageNewsUseCase, manageMediaUseCase, manageSettingsUseCase)
	adminLeadsHandler := rest.NewAdminLeadsHandler(manageLeadsUseCase)
	adminUsersHandler := rest.NewAdminUsersHandler(manageUsersUseCase)

	authMiddleware, err := rest.NewAuthMiddleware(appConfig.Auth.JWTSecret, roleRepository)
	if err != nil {
		appLogger.Error("Failed to create auth middleware", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create auth middleware: %w", err)
	}

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.CORSOrigins,
		blocksHandler, catalogHandler, leadsHandler, contentHandler, userHandler,
		adminCatalogHandler, adminContentHandler, adminLeadsHandler, adminUsersHandler,
		authMiddleware, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// --- 8. Собираем приложение ---
	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		rabbitConnManager:  connManager,
		leadEventsProducer: leadEventsProducer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Единый контекст приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.leadEventsProducer != nil {
			if err := a.leadEventsProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.rabbitConnManager != nil {
			if err := a.rabbitConnManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
