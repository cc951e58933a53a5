package simulation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// MockSimulator - случайная задержка и готовое сообщение по переданным данным
type MockSimulator struct {
	clock    clockwork.Clock
	minDelay time.Duration
	maxDelay time.Duration
	logger   *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// MockOption - опция MockSimulator
type MockOption func(*MockSimulator)

// WithClock - подмена часов
func WithClock(c clockwork.Clock) MockOption {
	return func(m *MockSimulator) { m.clock = c }
}

// WithRand - подмена источника случайных чисел
func WithRand(r *rand.Rand) MockOption {
	return func(m *MockSimulator) { m.rnd = r }
}

// NewMockSimulator - создание mock-стратегии симуляции
func NewMockSimulator(cfg *config.SimulationConfig, logger *zap.Logger, opts ...MockOption) *MockSimulator {
	m := &MockSimulator{
		clock:    clockwork.NewRealClock(),
		minDelay: cfg.MockMinDelay,
		maxDelay: cfg.MockMaxDelay,
		logger:   logger,
		rnd:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
	if m.maxDelay < m.minDelay {
		m.maxDelay = m.minDelay
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Simulate - ждёт задержку, если ctx не отменён раньше
func (m *MockSimulator) Simulate(ctx context.Context, districts []domain.DistrictPayload) (*domain.SimulationResult, error) {
	delay := m.delay()

	m.logger.Debug("Mock simulation started",
		zap.Int("districts_count", len(districts)),
		zap.Duration("delay", delay))

	timer := m.clock.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.Chan():
	}

	return &domain.SimulationResult{Message: m.message(districts)}, nil
}

func (m *MockSimulator) delay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	spread := m.maxDelay - m.minDelay
	if spread <= 0 {
		return m.minDelay
	}
	return m.minDelay + time.Duration(m.rnd.Int64N(int64(spread)+1))
}

func (m *MockSimulator) message(districts []domain.DistrictPayload) string {
	var (
		totalPersonnel int
		critical       int
		waterSum       float64
	)
	for _, d := range districts {
		totalPersonnel += d.Personnel.Total()
		waterSum += d.WaterLevel
		if domain.ClassifyWaterLevel(d.WaterLevel) == domain.WaterStatusHigh {
			critical++
		}
	}

	var avg float64
	if len(districts) > 0 {
		avg = waterSum / float64(len(districts))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	messages := []string{
		fmt.Sprintf("Simulation completed! %d personnel deployed across %d barangays.",
			totalPersonnel, len(districts)),
		fmt.Sprintf("Risk assessment: %d high water areas identified requiring immediate attention.",
			critical),
		fmt.Sprintf("Average water level: %.1fm. Resource optimization: %d%% efficiency achieved.",
			avg, 75+m.rnd.IntN(20)),
		fmt.Sprintf("Estimated emergency response time: %d-%d minutes.",
			8+m.rnd.IntN(10), 15+m.rnd.IntN(8)),
		fmt.Sprintf("Weather forecast impact: %d barangays may experience flooding in next 24 hours.",
			1+m.rnd.IntN(5)),
	}

	return messages[m.rnd.IntN(len(messages))]
}
