// Package main is the entry point of the notehub service.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/adapters/cache"
	httpadapter "notehub/internal/adapters/http"
	"notehub/internal/adapters/markdown"
	"notehub/internal/adapters/notify"
	"notehub/internal/adapters/postgres"
	"notehub/internal/adapters/services"
	"notehub/internal/app"
	"notehub/internal/config"
	"notehub/internal/db"
	"notehub/pkg/logger"
	"notehub/pkg/shutdown"
)

// Environment variables read before the configuration is loaded.
const (
	EnvLoggerMode  = "NOTEHUB_LOGGER_MODE"
	EnvLoggerLevel = "NOTEHUB_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to initialize note list cache"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Ignorable sync errors on std streams.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service log messages.
const (
	LogServiceStarted      = "notehub service started"
	LogServiceShutdownDone = "notehub service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing note list cache"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const migrationsDir = "migrations"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, migrationsDir)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		noteListCache, err := cache.NewRedisNoteListCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrInitCache, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		noteRepo := postgres.NewNoteRepository(database.Pool())
		userRepo := postgres.NewUserRepository(database.Pool())

		log.Info(ctx, LogInitServices)
		tokenService := services.NewJWT(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
		passwordService := services.NewBcrypt(0)
		renderer := markdown.NewRenderer()
		notifier := notify.NewLogNotifier()

		log.Info(ctx, LogInitUseCases)
		authUseCase := app.NewAuthUseCase(userRepo, passwordService, tokenService)
		noteUseCase := app.NewNoteUseCase(noteRepo, noteListCache, notifier)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpadapter.SetupRouter(fiberApp, authUseCase, noteUseCase, tokenService, renderer)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingCache)
				return noteListCache.Close()
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
