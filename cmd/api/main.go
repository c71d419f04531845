package main

// @title Fuel Price Microservice API
// @version 1.0.0
// @description Микросервис отслеживания цен на топливо и расчёта стоимости поездок. Ранжирует станции по цене выбранного типа топлива, сравнивает зарядные станции и считает стоимость маршрута между городами по справочнику расстояний.
// @description
// @description Основные возможности:
// @description - Ранжирование станций по цене топлива (бензин, дизель, LPG, зарядка EV)
// @description - Сводка лучших цен и потенциальной экономии
// @description - Расчёт стоимости маршрута между городами
// @description - Подбор оптимальных заправок вдоль маршрута

// @contact.name API Support
// @contact.email support@fuelprice-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/fuelprice-microservice/docs/swagger"
	"github.com/fuelprice-microservice/internal/config"
	httpDelivery "github.com/fuelprice-microservice/internal/delivery/http"
	"github.com/fuelprice-microservice/internal/delivery/http/handler"
	"github.com/fuelprice-microservice/internal/pkg/logger"
	"github.com/fuelprice-microservice/internal/repository/cache"
	"github.com/fuelprice-microservice/internal/repository/memory"
	"github.com/fuelprice-microservice/internal/repository/postgres"
	"github.com/fuelprice-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Fuel Price Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load reference data (distances and fallback price tables)
	refData, err := config.LoadReferenceData(cfg.Reference)
	if err != nil {
		log.Fatal("Failed to load reference data", zap.Error(err))
	}
	log.Info("Reference data loaded",
		zap.Int("cities", len(refData.Distances.Cities())),
		zap.Int("distance_pairs", refData.Distances.Len()),
	)

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories
	stationRepo := postgres.NewStationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	priceRefRepo := memory.NewPriceReferenceRepository(refData.PriceTables)

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	compareUC := usecase.NewCompareUseCase(
		stationRepo,
		cacheRepo,
		log,
		cfg.Cache.RankingCacheTTL,
	)

	routeUC := usecase.NewRouteUseCase(
		priceRefRepo,
		stationRepo,
		refData.Distances,
		log,
		cfg.Reference.RecommendedStops,
	)

	stationUC := usecase.NewStationUseCase(stationRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	compareHandler := handler.NewCompareHandler(compareUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	stationHandler := handler.NewStationHandler(stationUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		compareHandler,
		routeHandler,
		stationHandler,
		db,
		redisClient,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
