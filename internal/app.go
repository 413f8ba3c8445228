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
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"

	"github.com/LallyDik/airtable-estate-flow/internal/adapters/fileupload"
	logger_adapter "github.com/LallyDik/airtable-estate-flow/internal/adapters/logger"
	rabbitmq_adapter "github.com/LallyDik/airtable-estate-flow/internal/adapters/rabbitmq"
	"github.com/LallyDik/airtable-estate-flow/internal/adapters/recordstore"
	"github.com/LallyDik/airtable-estate-flow/internal/adapters/rest"
	"github.com/LallyDik/airtable-estate-flow/internal/adapters/session"
	"github.com/LallyDik/airtable-estate-flow/internal/configs"
	"github.com/LallyDik/airtable-estate-flow/internal/constants"
	"github.com/LallyDik/airtable-estate-flow/internal/core/eligibility"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
	"github.com/LallyDik/airtable-estate-flow/internal/core/usecase"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	eventsPublisher *rabbitmq_adapter.Publisher
	fluentClient    *fluent.Fluent
	logger          port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
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

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. АДАПТЕРЫ ВНЕШНИХ СЕРВИСОВ ---
	storeClient := recordstore.NewClient(
		appConfig.RecordStore.BaseURL,
		appConfig.RecordStore.BaseID,
		appConfig.RecordStore.APIKey,
	)
	uploadClient := fileupload.NewClient(appConfig.Upload.URL)
	sessionStore := session.NewFileStore(appConfig.Session.FilePath, baseLogger)

	// Публикация событий выключаема: по умолчанию работаем с no-op
	var eventsPublisher *rabbitmq_adapter.Publisher
	var eventPublisher port.EventPublisherPort = rabbitmq_adapter.NewNoopEventPublisher()
	if appConfig.RabbitMQ.Enabled {
		eventsPublisher, err = rabbitmq_adapter.NewPublisher(rabbitmq_adapter.PublisherConfig{
			URL:             appConfig.RabbitMQ.URL,
			ExchangeName:    constants.EventsExchangeName,
			ExchangeType:    constants.EventsExchangeType,
			DurableExchange: true,
		})
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		eventPublisher = rabbitmq_adapter.NewEventPublisher(eventsPublisher)
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 4. USE CASES (ядро бизнес-логики) ---
	engine := eligibility.New()

	loginUseCase := usecase.NewLoginUseCase(storeClient, sessionStore)
	getSessionUseCase := usecase.NewGetSessionUseCase(sessionStore)
	logoutUseCase := usecase.NewLogoutUseCase(sessionStore)

	listPropertiesUseCase := usecase.NewListPropertiesUseCase(storeClient)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(storeClient, storeClient, uploadClient, eventPublisher)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(storeClient)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(storeClient)
	listAttachmentsUseCase := usecase.NewListAttachmentsUseCase(storeClient)

	listPostsUseCase := usecase.NewListPostsUseCase(storeClient)
	createPostUseCase := usecase.NewCreatePostUseCase(storeClient, storeClient, engine, eventPublisher, nil)
	updatePostUseCase := usecase.NewUpdatePostUseCase(storeClient, engine, nil)
	deletePostUseCase := usecase.NewDeletePostUseCase(storeClient, eventPublisher)
	postAvailabilityUseCase := usecase.NewPostAvailabilityUseCase(storeClient, engine, nil)

	uploadFileUseCase := usecase.NewUploadFileUseCase(uploadClient)

	// --- 5. REST API Server ---
	sessionHandler := rest.NewSessionHandler(loginUseCase, getSessionUseCase, logoutUseCase)
	propertyHandler := rest.NewPropertyHandler(
		listPropertiesUseCase,
		createPropertyUseCase,
		updatePropertyUseCase,
		deletePropertyUseCase,
		listAttachmentsUseCase,
	)
	postHandler := rest.NewPostHandler(
		listPostsUseCase,
		createPostUseCase,
		updatePostUseCase,
		deletePostUseCase,
		postAvailabilityUseCase,
	)
	uploadHandler := rest.NewUploadHandler(uploadFileUseCase)

	apiServer := rest.NewServer(
		appConfig.Rest.PORT,
		appConfig.Cors.AllowedOrigins,
		sessionHandler,
		propertyHandler,
		postHandler,
		uploadHandler,
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		apiServer: apiServer,

		eventsPublisher: eventsPublisher,
		fluentClient:    fluentClient,
		logger:          appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventsPublisher != nil {
			if err := a.eventsPublisher.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ publisher", err, nil)
			}
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

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

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
