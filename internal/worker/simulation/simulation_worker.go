package simulation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"github.com/emergency-response-dashboard/internal/observability"
	"github.com/emergency-response-dashboard/internal/worker"
)

const errorBackoff = time.Second

var _ worker.Worker = (*SimulationWorker)(nil)

// SimulationWorker - выполняет симуляции из stream:simulation:request
// и публикует результат в stream:simulation:done
type SimulationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	simulator    repository.Simulator
	metrics      *observability.Metrics
	mode         string
	maxBatchSize int
	pollInterval time.Duration
	claimMinIdle time.Duration
}

// NewSimulationWorker - создание SimulationWorker
func NewSimulationWorker(
	base *worker.BaseWorker,
	streamRepo repository.StreamRepository,
	simulator repository.Simulator,
	metrics *observability.Metrics,
	cfg *config.Config,
) *SimulationWorker {
	return &SimulationWorker{
		BaseWorker:   base,
		streamRepo:   streamRepo,
		simulator:    simulator,
		metrics:      metrics,
		mode:         cfg.Simulation.Mode,
		maxBatchSize: cfg.Worker.MaxBatchSize,
		pollInterval: cfg.Worker.PollInterval,
		claimMinIdle: cfg.Worker.ClaimMinIdle,
	}
}

// Start - запуск воркера
func (w *SimulationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SimulationWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_batch_size", w.maxBatchSize),
		zap.String("simulation_mode", w.mode))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSimulationRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorBackoff)
			continue
		}

		if processed == 0 {
			w.Pause(ctx, w.pollInterval)
		}
	}
}

// processBatch - читает до maxBatchSize запросов и выполняет их параллельно.
// Сначала забираются сообщения без ACK старше claimMinIdle.
// Возвращает число прочитанных сообщений.
func (w *SimulationWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamSimulationRequest,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.claimMinIdle,
		w.maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending: %w", err)
	}

	if len(messages) == 0 {
		messages, err = w.streamRepo.ConsumeBatch(
			ctx,
			domain.StreamSimulationRequest,
			w.ConsumerGroup(),
			w.ConsumerName(),
			w.maxBatchSize,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to consume batch: %w", err)
		}
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		acked []string
	)

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// битое сообщение подтверждаем, чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamSimulationRequest, w.ConsumerGroup(), msg.ID)
			continue
		}

		wg.Add(1)
		go func(id string, event *domain.SimulationRequestEvent) {
			defer wg.Done()

			if !w.handle(ctx, event) {
				return
			}
			mu.Lock()
			acked = append(acked, id)
			mu.Unlock()
		}(msg.ID, event)
	}

	wg.Wait()

	if len(acked) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamSimulationRequest, w.ConsumerGroup(), acked); err != nil {
			// не критично, сообщения будут переобработаны
			logger.Error("Failed to ack messages", zap.Error(err))
		}
	}

	logger.Info("Batch processed", zap.Int("completed", len(acked)))

	return len(messages), nil
}

// handle - одна симуляция и публикация результата. false, если запуск прерван
// и запрос должен остаться в pending.
func (w *SimulationWorker) handle(ctx context.Context, event *domain.SimulationRequestEvent) bool {
	logger := w.Logger().With(zap.String("request_id", event.RequestID.String()))
	started := w.Clock().Now()

	result, err := w.simulator.Simulate(ctx, event.Districts)
	if err != nil && stderrors.Is(err, context.Canceled) {
		logger.Info("Simulation interrupted, leaving request pending")
		return false
	}

	finished := w.Clock().Now()
	elapsed := finished.Sub(started)

	done := domain.SimulationDoneEvent{
		RequestID:   event.RequestID,
		Source:      domain.SourceWorker,
		Status:      "success",
		Result:      result,
		Districts:   len(event.Districts),
		DurationMS:  elapsed.Milliseconds(),
		CompletedAt: finished,
	}
	outcome := "success"
	if err != nil {
		done.Status = "failed"
		done.Result = nil
		done.Error = domain.UserMessage(err)
		outcome = "error"
		logger.Warn("Simulation failed", zap.Error(err))
	}

	w.metrics.Submissions.WithLabelValues(domain.SourceWorker, done.Status).Inc()
	w.metrics.SubmissionDuration.WithLabelValues(domain.SourceWorker).Observe(elapsed.Seconds())
	w.metrics.SimulationRequests.WithLabelValues(w.mode, outcome).Inc()

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamSimulationDone, done); err != nil {
		logger.Error("Failed to publish done event", zap.Error(err))
		return false
	}

	logger.Info("Simulation request completed",
		zap.String("status", done.Status),
		zap.Duration("elapsed", elapsed))
	return true
}

func parseMessage(msg domain.StreamMessage) (*domain.SimulationRequestEvent, error) {
	var event domain.SimulationRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("missing request_id")
	}
	return &event, nil
}
