package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/config"
	"github.com/eliperez-dev/UntilEveryCage/internal/delivery/http/handler"
	"github.com/eliperez-dev/UntilEveryCage/internal/delivery/http/middleware"
	"github.com/eliperez-dev/UntilEveryCage/internal/metrics"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

// Server is the Fiber HTTP server wiring handlers to routes.
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	storeUC *usecase.StoreUseCase
	metrics *metrics.Provider

	mapHandler     *handler.MapHandler
	statsHandler   *handler.StatsHandler
	dataHandler    *handler.DataHandler
	optionsHandler *handler.OptionsHandler
	exportHandler  *handler.ExportHandler
	shareHandler   *handler.ShareHandler
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	storeUC *usecase.StoreUseCase,
	provider *metrics.Provider,
	mapHandler *handler.MapHandler,
	statsHandler *handler.StatsHandler,
	dataHandler *handler.DataHandler,
	optionsHandler *handler.OptionsHandler,
	exportHandler *handler.ExportHandler,
	shareHandler *handler.ShareHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Until Every Cage API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		storeUC:        storeUC,
		metrics:        provider,
		mapHandler:     mapHandler,
		statsHandler:   statsHandler,
		dataHandler:    dataHandler,
		optionsHandler: optionsHandler,
		exportHandler:  exportHandler,
		shareHandler:   shareHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))

	// Share links live outside the API prefix so they stay short.
	s.app.Get("/s/:token", s.shareHandler.ResolveShare)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		if !s.storeUC.Loaded() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "loading",
				"time":   time.Now(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/map", s.mapHandler.GetMap)
	api.Get("/stats", s.statsHandler.GetStats)

	api.Get("/facilities", s.dataHandler.GetFacilities)
	api.Get("/labs", s.dataHandler.GetLabs)
	api.Get("/inspections", s.dataHandler.GetInspections)

	api.Get("/filters/options", s.optionsHandler.GetFilterOptions)
	api.Get("/export.csv", s.exportHandler.ExportCSV)

	api.Post("/share", s.shareHandler.CreateShare)
}

// Start runs the listener.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if e, ok := err.(*errors.AppError); ok {
			code = e.StatusCode
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
