// Sleep Journal API
//
// REST API for recording nightly sleep and reading 30-day statistics.
//
//	@title			Sleep Journal API
//	@version		1.0
//	@description	Record one sleep log per night, read the latest one and get rolling 30-day statistics. Callers identify themselves with the X-User-ID header.
//
//	@BasePath	/api
//
//	@tag.name			sleep-logs
//	@tag.description	Sleep journal endpoints
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/sleep-journal/internal/api"
	"github.com/blaisecz/sleep-journal/internal/api/handler"
	"github.com/blaisecz/sleep-journal/internal/config"
	"github.com/blaisecz/sleep-journal/internal/logging"
	"github.com/blaisecz/sleep-journal/internal/migrations"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/blaisecz/sleep-journal/internal/seed"
	"github.com/blaisecz/sleep-journal/internal/service"
	"github.com/blaisecz/sleep-journal/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("invalid timezone", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Initialize repository
	var sleepLogRepo repository.SleepLogRepository
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		sleepLogRepo = repository.NewMemorySleepLogRepository()
	case config.StorageDriverPostgres:
		db, err := config.NewDatabase(cfg, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("failed to access connection pool", zap.Error(err))
		}
		defer sqlDB.Close()

		if err := migrations.Up(ctx, sqlDB, logger); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		logger.Info("database migration completed")
		sleepLogRepo = repository.NewSleepLogRepository(db)
	default:
		logger.Fatal("unknown storage driver", zap.String("driver", cfg.StorageDriver))
	}

	// Initialize services
	sleepLogService := service.NewSleepLogService(sleepLogRepo)
	statisticsService := service.NewStatisticsService(sleepLogRepo, loc, time.Now)

	if cfg.Seed {
		logger.Info("seeding sample data (SEED=true)")
		if _, err := seed.Run(ctx, sleepLogService, time.Now(), loc, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Setup router
	sleepLogHandler := handler.NewSleepLogHandler(sleepLogService, statisticsService, logger)
	router := api.NewRouter(sleepLogHandler, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", zap.Error(err))
	}
}
