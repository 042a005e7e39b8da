package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/sleep-journal/internal/config"
	"github.com/blaisecz/sleep-journal/internal/logging"
	"github.com/blaisecz/sleep-journal/internal/migrations"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/blaisecz/sleep-journal/internal/seed"
	"github.com/blaisecz/sleep-journal/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, "console", cfg.ServiceName+"-seed")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("invalid timezone", zap.Error(err))
	}

	db, err := config.NewDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access connection pool", zap.Error(err))
	}
	defer sqlDB.Close()

	ctx := context.Background()
	if err := migrations.Up(ctx, sqlDB, logger); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	svc := service.NewSleepLogService(repository.NewSleepLogRepository(db))
	if _, err := seed.Run(ctx, svc, time.Now(), loc, logger); err != nil {
		logger.Fatal("failed to seed", zap.Error(err))
	}

	fmt.Println("\nSample user IDs for testing (X-User-ID):")
	for _, id := range seed.Users {
		fmt.Printf("  %s\n", id)
	}
}
