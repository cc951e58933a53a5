package usecase

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"github.com/emergency-response-dashboard/internal/observability"
	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

const publishTimeout = 5 * time.Second

// SubmissionController - состояния idle -> submitting -> success|failed.
// Start и Reset увеличивают generation, ответ старого поколения отбрасывается.
type SubmissionController struct {
	store     *DistrictStore
	simulator repository.Simulator
	publisher repository.EventPublisher
	clock     clockwork.Clock
	metrics   *observability.Metrics
	logger    *zap.Logger

	mu         sync.Mutex
	generation uint64
	state      dto.SubmissionState
	id         uuid.UUID
	result     *domain.SimulationResult
	errMsg     string
	startedAt  time.Time
	finishedAt time.Time
	cancel     context.CancelFunc
}

// ControllerOption - опция SubmissionController
type ControllerOption func(*SubmissionController)

// WithControllerClock - подмена часов
func WithControllerClock(c clockwork.Clock) ControllerOption {
	return func(sc *SubmissionController) { sc.clock = c }
}

// WithEventPublisher - публикация SimulationDoneEvent после каждой отправки
func WithEventPublisher(p repository.EventPublisher) ControllerOption {
	return func(sc *SubmissionController) { sc.publisher = p }
}

// NewSubmissionController - создание контроллера отправки
func NewSubmissionController(
	store *DistrictStore,
	simulator repository.Simulator,
	metrics *observability.Metrics,
	logger *zap.Logger,
	opts ...ControllerOption,
) *SubmissionController {
	c := &SubmissionController{
		store:     store,
		simulator: simulator,
		clock:     clockwork.NewRealClock(),
		metrics:   metrics,
		logger:    logger,
		state:     dto.SubmissionIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset - возврат в idle, очистка результата и сброс хранилища.
// Выполняющийся вызов отменяется, его ответ будет отброшен.
func (c *SubmissionController) Reset() {
	c.mu.Lock()
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
		c.metrics.SubmissionInFlight.Set(0)
	}
	c.clearLocked()
	c.mu.Unlock()

	c.store.ResetAll()
	c.logger.Info("Submission controller reset")
}

// Start - запуск отправки в фоне.
// Пока идёт другая отправка, возвращает ErrSubmissionInProgress.
func (c *SubmissionController) Start(ctx context.Context) (dto.SubmissionResponse, error) {
	snap, _, _, err := c.start(ctx)
	return snap, err
}

func (c *SubmissionController) start(ctx context.Context) (dto.SubmissionResponse, chan struct{}, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == dto.SubmissionSubmitting {
		return c.snapshotLocked(), nil, 0, errors.ErrSubmissionInProgress
	}

	// вызов живёт дольше запроса, который его начал
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	c.generation++
	c.clearLocked()
	c.state = dto.SubmissionSubmitting
	c.id = uuid.New()
	c.startedAt = c.clock.Now()
	c.cancel = cancel

	payload := c.store.Payload()
	c.metrics.SubmissionInFlight.Set(1)

	c.logger.Info("Simulation submitted",
		zap.String("submission_id", c.id.String()),
		zap.Int("districts", len(payload)))

	done := make(chan struct{})
	go c.run(runCtx, c.generation, c.id, c.startedAt, payload, done)

	return c.snapshotLocked(), done, c.generation, nil
}

// Submit - запуск и ожидание результата.
// Если ctx завершится раньше, отправка отменяется и возвращается ctx.Err().
func (c *SubmissionController) Submit(ctx context.Context) (dto.SubmissionResponse, error) {
	snap, done, gen, err := c.start(ctx)
	if err != nil {
		return snap, err
	}

	select {
	case <-done:
		return c.Snapshot(), nil
	case <-ctx.Done():
		c.cancelGeneration(gen)
		<-done
		return c.Snapshot(), ctx.Err()
	}
}

// Snapshot - текущее состояние
func (c *SubmissionController) Snapshot() dto.SubmissionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Close - отмена выполняющегося вызова, контроллер остаётся рабочим
func (c *SubmissionController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
}

func (c *SubmissionController) cancelGeneration(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation == gen && c.cancel != nil {
		c.cancel()
	}
}

func (c *SubmissionController) run(
	ctx context.Context,
	gen uint64,
	id uuid.UUID,
	startedAt time.Time,
	payload []domain.DistrictPayload,
	done chan struct{},
) {
	defer close(done)

	result, err := c.simulator.Simulate(ctx, payload)
	finishedAt := c.clock.Now()
	elapsed := finishedAt.Sub(startedAt)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.metrics.Submissions.WithLabelValues(domain.SourceDashboard, "discarded").Inc()
		c.logger.Info("Discarding stale simulation response",
			zap.String("submission_id", id.String()))
		return
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.metrics.SubmissionInFlight.Set(0)

	switch {
	case err == nil:
		c.state = dto.SubmissionSuccess
		c.result = result
		c.finishedAt = finishedAt
	case stderrors.Is(err, context.Canceled):
		c.clearLocked()
		c.mu.Unlock()
		c.metrics.Submissions.WithLabelValues(domain.SourceDashboard, "cancelled").Inc()
		c.logger.Info("Simulation cancelled", zap.String("submission_id", id.String()))
		return
	default:
		c.state = dto.SubmissionFailed
		c.errMsg = domain.UserMessage(err)
		c.finishedAt = finishedAt
	}

	state := c.state
	errMsg := c.errMsg
	c.mu.Unlock()

	c.metrics.Submissions.WithLabelValues(domain.SourceDashboard, string(state)).Inc()
	c.metrics.SubmissionDuration.WithLabelValues(domain.SourceDashboard).Observe(elapsed.Seconds())

	if err != nil {
		c.logger.Warn("Simulation failed",
			zap.String("submission_id", id.String()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
	} else {
		c.logger.Info("Simulation completed",
			zap.String("submission_id", id.String()),
			zap.Duration("elapsed", elapsed))
	}

	c.publish(domain.SimulationDoneEvent{
		RequestID:   id,
		Source:      domain.SourceDashboard,
		Status:      string(state),
		Result:      result,
		Error:       errMsg,
		Districts:   len(payload),
		DurationMS:  elapsed.Milliseconds(),
		CompletedAt: finishedAt,
	})
}

func (c *SubmissionController) publish(event domain.SimulationDoneEvent) {
	if c.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := c.publisher.PublishToStream(ctx, domain.StreamSimulationDone, event); err != nil {
		c.logger.Error("Failed to publish simulation event",
			zap.String("submission_id", event.RequestID.String()),
			zap.Error(err))
	}
}

func (c *SubmissionController) clearLocked() {
	c.state = dto.SubmissionIdle
	c.id = uuid.Nil
	c.result = nil
	c.errMsg = ""
	c.startedAt = time.Time{}
	c.finishedAt = time.Time{}
}

func (c *SubmissionController) snapshotLocked() dto.SubmissionResponse {
	snap := dto.SubmissionResponse{
		State:  c.state,
		Result: c.result,
		Error:  c.errMsg,
	}
	if c.id != uuid.Nil {
		snap.ID = c.id.String()
	}
	if !c.startedAt.IsZero() {
		t := c.startedAt
		snap.StartedAt = &t
	}
	if !c.finishedAt.IsZero() {
		t := c.finishedAt
		snap.FinishedAt = &t
	}
	if c.result != nil && c.result.Outcome != nil {
		snap.Best = c.result.Outcome.Best()
	}
	return snap
}
