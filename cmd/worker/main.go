package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"github.com/emergency-response-dashboard/internal/infrastructure/simulation"
	"github.com/emergency-response-dashboard/internal/observability"
	"github.com/emergency-response-dashboard/internal/pkg/logger"
	redisRepo "github.com/emergency-response-dashboard/internal/repository/redis"
	"github.com/emergency-response-dashboard/internal/worker"
	simulationWorker "github.com/emergency-response-dashboard/internal/worker/simulation"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "simulation-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Simulation Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_batch_size", cfg.Worker.MaxBatchSize),
		zap.Duration("poll_interval", cfg.Worker.PollInterval),
		zap.String("simulation_mode", cfg.Simulation.Mode))

	// 3. Connect to Redis
	redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Redis(), log)

	var simulator repository.Simulator
	switch cfg.Simulation.Mode {
	case config.SimulationModeHTTP:
		simulator = simulation.NewHTTPSimulator(&cfg.Simulation, log)
	default:
		simulator = simulation.NewMockSimulator(&cfg.Simulation, log)
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// 5. Initialize workers
	simWorker := simulationWorker.NewSimulationWorker(
		worker.NewBaseWorker("simulation-worker", cfg.Worker.ConsumerGroup, nil, log),
		streamRepo,
		simulator,
		metrics,
		cfg,
	)

	// 6. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, cfg.Worker.ShutdownTimeout)
	workerManager.Register(simWorker)

	// 7. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
