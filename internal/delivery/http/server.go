package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/delivery/http/handler"
	"github.com/emergency-response-dashboard/internal/delivery/http/middleware"
	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/pkg/utils"
)

// Handlers - набор HTTP обработчиков сервера
type Handlers struct {
	Health     *handler.HealthHandler
	District   *handler.DistrictHandler
	Selection  *handler.SelectionHandler
	Map        *handler.MapHandler
	Summary    *handler.SummaryHandler
	Simulation *handler.SimulationHandler
	Dashboard  *handler.DashboardHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	gatherer prometheus.Gatherer
	handlers Handlers
	logger   *zap.Logger
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	handlers Handlers,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Emergency Response Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		gatherer: gatherer,
		handlers: handlers,
		logger:   logger,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение, в основном для app.Test в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORSOriginList()))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	if h.Dashboard != nil {
		s.app.Get("/", h.Dashboard.Render)
	}

	api := s.app.Group("/api/v1")

	api.Get("/health", h.Health.Health)

	// Районы
	api.Get("/districts", h.District.List)
	api.Post("/districts/reset", h.District.Reset)
	api.Get("/districts/:id", h.District.Get)
	api.Patch("/districts/:id", h.District.Update)

	// Диалог редактирования
	api.Post("/districts/:id/select", h.Selection.Select)
	api.Get("/selection", h.Selection.Current)
	api.Post("/selection/commit", h.Selection.Commit)
	api.Delete("/selection", h.Selection.Cancel)

	// Карта и сводка
	api.Get("/map/markers", h.Map.Markers)
	api.Get("/map/legend", h.Map.Legend)
	api.Get("/summary", h.Summary.GetSummary)

	// Симуляция
	api.Post("/simulation", h.Simulation.Start)
	api.Get("/simulation", h.Simulation.Snapshot)
	api.Get("/simulation/service", h.Simulation.ServiceStatus)
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

// customErrorHandler - ошибки fiber (404, 405, лимит тела) в стандартном формате ответа
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: errors.New(httpErrorCode(fe.Code), fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
