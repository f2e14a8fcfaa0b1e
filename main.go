package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"airport-booking/cmd"
	"airport-booking/internal/data/repository"
	"airport-booking/internal/usecase"
	"airport-booking/internal/wire"
	"airport-booking/pkg/cache"
	"airport-booking/pkg/database"
	"airport-booking/pkg/messaging"
	"airport-booking/pkg/metrics"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.App.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	infra := usecase.Infra{Metrics: metrics.NewBooking()}

	if config.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(config.Redis, logger)
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			// catalog reads fall back to postgres on cache errors
			logger.Warn("Redis unreachable, catalog cache degraded", zap.Error(err))
		}
		infra.Cache = redisCache
	}

	if len(config.Kafka.Brokers) > 0 {
		producer := messaging.NewProducer(config.Kafka, logger)
		defer producer.Close()
		infra.Publisher = producer
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, infra, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
