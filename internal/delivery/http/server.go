package http

import (
	"context"
	"time"

	"github.com/fuelprice-microservice/internal/config"
	"github.com/fuelprice-microservice/internal/delivery/http/handler"
	"github.com/fuelprice-microservice/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthChecker - проверка доступности внешней зависимости
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	compareHandler *handler.CompareHandler
	routeHandler   *handler.RouteHandler
	stationHandler *handler.StationHandler

	// Health checks
	db    HealthChecker
	cache HealthChecker
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	compareHandler *handler.CompareHandler,
	routeHandler *handler.RouteHandler,
	stationHandler *handler.StationHandler,
	db HealthChecker,
	cache HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Fuel Price Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		compareHandler: compareHandler,
		routeHandler:   routeHandler,
		stationHandler: stationHandler,
		db:             db,
		cache:          cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	// Distance reference
	api.Get("/cities", s.routeHandler.Cities)

	// Route cost calculation
	api.Post("/route/plan", s.routeHandler.PlanRoute)
	api.Post("/route/optimize", s.routeHandler.OptimizeRoute)

	// Price comparison
	api.Get("/compare", s.compareHandler.Compare)
	api.Get("/compare/summary", s.compareHandler.Summary)
	api.Get("/compare/ev", s.compareHandler.CompareEV)

	// Station catalog
	api.Get("/stations", s.stationHandler.GetStations)
	api.Get("/stations/:id", s.stationHandler.GetStationByID)
}

// health проверяет доступность PostgreSQL и Redis
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := fiber.Map{"postgres": "ok", "redis": "ok"}

	if err := s.db.Health(ctx); err != nil {
		checks["postgres"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}
	if err := s.cache.Health(ctx); err != nil {
		checks["redis"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
