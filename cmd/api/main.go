package main

// @title Emergency Response Dashboard API
// @version 1.0.0
// @description Сервис дашборда реагирования на наводнения. Хранит состояние районов (уровень воды, персонал) в памяти на время сессии и отправляет данные во внешний сервис симуляции.
// @description
// @description Основные возможности:
// @description - Карта районов с цветовой индикацией уровня воды
// @description - Диалог редактирования района
// @description - Сводка по персоналу и уровню воды
// @description - Запуск симуляции распределения персонала (PSO / FA)

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

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/emergency-response-dashboard/docs"
	"github.com/emergency-response-dashboard/internal/config"
	httpDelivery "github.com/emergency-response-dashboard/internal/delivery/http"
	"github.com/emergency-response-dashboard/internal/delivery/http/handler"
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"github.com/emergency-response-dashboard/internal/infrastructure/simulation"
	"github.com/emergency-response-dashboard/internal/observability"
	"github.com/emergency-response-dashboard/internal/pkg/logger"
	"github.com/emergency-response-dashboard/internal/repository/postgres"
	redisRepo "github.com/emergency-response-dashboard/internal/repository/redis"
	"github.com/emergency-response-dashboard/internal/repository/seed"
	"github.com/emergency-response-dashboard/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "dashboard-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Emergency Response Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("simulation_mode", cfg.Simulation.Mode),
		zap.String("registry_source", cfg.Registry.Source),
	)

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	healthChecks := map[string]handler.HealthCheck{}

	// 3. Registry source
	var registryRepo repository.RegistryRepository
	switch cfg.Registry.Source {
	case config.RegistrySourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		registryRepo, err = postgres.NewRegistryRepository(db, cfg.Registry.Table, log)
		if err != nil {
			log.Fatal("Failed to create registry repository", zap.Error(err))
		}
		healthChecks["postgres"] = db.Health
	default:
		registryRepo = seed.NewRegistryRepository()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	registry, err := usecase.LoadRegistry(ctx, registryRepo, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to load district registry", zap.Error(err))
	}

	// 4. Event stream (optional)
	var controllerOpts []usecase.ControllerOption
	if cfg.Events.Enabled {
		redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		streamRepo := redisRepo.NewStreamRepository(redisClient.Redis(), log)
		controllerOpts = append(controllerOpts, usecase.WithEventPublisher(streamRepo))
		healthChecks["redis"] = redisClient.Health
		log.Info("Redis event stream enabled")
	}

	// 5. Simulation strategy
	var simulator repository.Simulator
	switch cfg.Simulation.Mode {
	case config.SimulationModeHTTP:
		simulator = simulation.NewHTTPSimulator(&cfg.Simulation, log)
	default:
		simulator = simulation.NewMockSimulator(&cfg.Simulation, log)
	}
	statusClient := simulation.NewStatusClient(&cfg.Simulation, log)

	// 6. Initialize Use Cases
	store, err := usecase.NewDistrictStore(registry, metrics, log)
	if err != nil {
		log.Fatal("Failed to initialize district store", zap.Error(err))
	}
	session := usecase.NewEditSession(store, log)
	mapUC := usecase.NewMapUseCase(store)
	summaryUC := usecase.NewSummaryUseCase(store)
	controller := usecase.NewSubmissionController(store, simulator, metrics, log, controllerOpts...)
	serviceUC := usecase.NewSimulationServiceUseCase(statusClient, &cfg.Simulation, log)

	log.Info("Use cases initialized", zap.Int("districts", len(registry)))

	// 7. Initialize HTTP Handlers
	dashboardHandler, err := handler.NewDashboardHandler(mapUC, summaryUC, controller, log)
	if err != nil {
		log.Fatal("Failed to parse dashboard templates", zap.Error(err))
	}

	handlers := httpDelivery.Handlers{
		Health:     handler.NewHealthHandler(healthChecks, log),
		District:   handler.NewDistrictHandler(store, controller, log),
		Selection:  handler.NewSelectionHandler(session, log),
		Map:        handler.NewMapHandler(mapUC, log),
		Summary:    handler.NewSummaryHandler(summaryUC, log),
		Simulation: handler.NewSimulationHandler(controller, serviceUC, log),
		Dashboard:  dashboardHandler,
	}

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, handlers, prometheus.DefaultGatherer, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// In-flight simulation is abandoned on exit.
	controller.Close()

	log.Info("Server stopped successfully")
}
