package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/emergency-response-dashboard/internal/domain"
)

// MockSimulator is a mock of repository.Simulator
type MockSimulator struct {
	mock.Mock
}

func (m *MockSimulator) Simulate(ctx context.Context, districts []domain.DistrictPayload) (*domain.SimulationResult, error) {
	args := m.Called(ctx, districts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationResult), args.Error(1)
}

// MockEventPublisher is a mock of repository.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockRegistryRepository is a mock of repository.RegistryRepository
type MockRegistryRepository struct {
	mock.Mock
}

func (m *MockRegistryRepository) Load(ctx context.Context) ([]domain.District, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.District), args.Error(1)
}

// MockStatusRepository is a mock of repository.ServiceStatusRepository
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Status(ctx context.Context) (map[string]interface{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

// blockingSimulator waits for release (or ctx, when honorCtx is set) before answering.
type blockingSimulator struct {
	started  chan struct{}
	release  chan struct{}
	honorCtx bool
	result   *domain.SimulationResult
	err      error
}

func newBlockingSimulator(honorCtx bool) *blockingSimulator {
	return &blockingSimulator{
		started:  make(chan struct{}, 16),
		release:  make(chan struct{}),
		honorCtx: honorCtx,
		result:   &domain.SimulationResult{Message: "done"},
	}
}

func (b *blockingSimulator) Simulate(ctx context.Context, _ []domain.DistrictPayload) (*domain.SimulationResult, error) {
	b.started <- struct{}{}
	if b.honorCtx {
		select {
		case <-b.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else {
		<-b.release
	}
	return b.result, b.err
}
