package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/infrastructure/simulation"
	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/usecase"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

func newHTTPController(t *testing.T, handler http.HandlerFunc) (*usecase.SubmissionController, *usecase.DistrictStore) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, metrics := newTestStore(t, oneDistrictSeed())
	sim := simulation.NewHTTPSimulator(&config.SimulationConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	return usecase.NewSubmissionController(store, sim, metrics, zap.NewNop()), store
}

func TestSubmissionController_InitialState(t *testing.T) {
	store, metrics := newTestStore(t, oneDistrictSeed())
	c := usecase.NewSubmissionController(store, &MockSimulator{}, metrics, zap.NewNop())

	snap := c.Snapshot()
	assert.Equal(t, dto.SubmissionIdle, snap.State)
	assert.Empty(t, snap.ID)
	assert.Nil(t, snap.Result)
	assert.Empty(t, snap.Error)
}

func TestSubmissionController_EmptyOutcomeSuccess(t *testing.T) {
	c, _ := newHTTPController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"pso":[{}, 0.0, 0.0],"fa":[{}, 0.0, 0.0]}}`))
	})

	snap, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.SubmissionSuccess, snap.State)
	assert.Empty(t, snap.Error)
	require.NotNil(t, snap.Result)
	require.NotNil(t, snap.Result.Outcome)
	assert.Empty(t, snap.Result.Outcome.PSO.Allocation)
	assert.Empty(t, snap.Result.Outcome.FA.Allocation)
	assert.Equal(t, domain.AlgorithmPSO, snap.Best)
	assert.NotNil(t, snap.FinishedAt)
}

func TestSubmissionController_ValidationErrorMessage(t *testing.T) {
	c, _ := newHTTPController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"msg":"waterLevel must be >= 0"}]}`))
	})

	snap, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.SubmissionFailed, snap.State)
	assert.Equal(t, "waterLevel must be >= 0", snap.Error)
	assert.Nil(t, snap.Result)
}

func TestSubmissionController_FallbackMessage(t *testing.T) {
	c, _ := newHTTPController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	snap, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.SubmissionFailed, snap.State)
	assert.Equal(t, "Simulation failed. Please try again.", snap.Error)
}

func TestSubmissionController_PayloadHasNoPosition(t *testing.T) {
	store, metrics := newTestStore(t, oneDistrictSeed())
	require.NoError(t, store.Update("1", domain.DistrictPatch{
		WaterLevel: float64Ptr(3),
		Personnel:  &domain.PersonnelCount{SRR: 2, Health: 1},
	}))

	sim := &MockSimulator{}
	expected := []domain.DistrictPayload{{
		ID:         "1",
		Name:       "Addition Hills",
		WaterLevel: 3,
		Personnel:  domain.PersonnelCount{SRR: 2, Health: 1},
	}}
	sim.On("Simulate", mock.Anything, expected).Return(&domain.SimulationResult{Message: "ok"}, nil)

	c := usecase.NewSubmissionController(store, sim, metrics, zap.NewNop())
	snap, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.SubmissionSuccess, snap.State)
	assert.Equal(t, "ok", snap.Result.Message)
	sim.AssertExpectations(t)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues("dashboard", "success")))
}

func TestSubmissionController_RejectsConcurrentSubmit(t *testing.T) {
	store, metrics := newTestStore(t, oneDistrictSeed())
	sim := newBlockingSimulator(true)
	c := usecase.NewSubmissionController(store, sim, metrics, zap.NewNop())

	first, err := c.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.SubmissionSubmitting, first.State)
	<-sim.started

	second, err := c.Start(context.Background())
	assert.ErrorIs(t, err, errors.ErrSubmissionInProgress)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SubmissionInFlight))

	close(sim.release)
	assert.Eventually(t, func() bool {
		return c.Snapshot().State == dto.SubmissionSuccess
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.SubmissionInFlight))
}

func TestSubmissionController_ResetDiscardsLateResponse(t *testing.T) {
	store, metrics := newTestStore(t, oneDistrictSeed())
	require.NoError(t, store.Update("1", domain.DistrictPatch{WaterLevel: float64Ptr(2.5)}))

	sim := newBlockingSimulator(false)
	c := usecase.NewSubmissionController(store, sim, metrics, zap.NewNop())

	_, err := c.Start(context.Background())
	require.NoError(t, err)
	<-sim.started

	c.Reset()

	snap := c.Snapshot()
	assert.Equal(t, dto.SubmissionIdle, snap.State)
	assert.Empty(t, snap.ID)
	d, _ := store.Get("1")
	assert.Zero(t, d.WaterLevel)

	close(sim.release)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.Submissions.WithLabelValues("dashboard", "discarded")) == 1
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, dto.SubmissionIdle, c.Snapshot().State)
	assert.Nil(t, c.Snapshot().Result)
}

func TestSubmissionController_ResetClearsTerminalState(t *testing.T) {
	c, store := newHTTPController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"bad"}`))
	})
	require.NoError(t, store.Update("1", domain.DistrictPatch{WaterLevel: float64Ptr(1)}))

	snap, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, dto.SubmissionFailed, snap.State)

	c.Reset()
	snap = c.Snapshot()
	assert.Equal(t, dto.SubmissionIdle, snap.State)
	assert.Empty(t, snap.Error)
	d, _ := store.Get("1")
	assert.Zero(t, d.WaterLevel)
}

func TestSubmissionController_ResubmitAfterFailure(t *testing.T) {
	store, metrics := newTestStore(t, oneDistrictSeed())
	sim := &MockSimulator{}
	sim.On("Simulate", mock.Anything, mock.Anything).
		Return(nil, &domain.SimulationError{StatusCode: 500, Message: "boom"}).Once()
	sim.On("Simulate", mock.Anything, mock.Anything).
		Return(&domain.SimulationResult{Message: "ok"}, nil).Once()

	c := usecase.NewSubmissionController(store, sim, metrics, zap.NewNop())

	first, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.SubmissionFailed, first.State)

	second, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.SubmissionSuccess, second.State)
	assert.Empty(t, second.Error)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmissionController_SubmitCancelledByCaller(t *testing.T) {
	store, metrics := newTestStore(t, oneDistrictSeed())
	sim := newBlockingSimulator(true)
	c := usecase.NewSubmissionController(store, sim, metrics, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-sim.started
		cancel()
	}()

	snap, err := c.Submit(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, dto.SubmissionIdle, snap.State)
	assert.Empty(t, snap.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues("dashboard", "cancelled")))
}

func TestSubmissionController_Timestamps(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2024, time.July, 24, 8, 0, 0, 0, time.UTC))
	store, metrics := newTestStore(t, oneDistrictSeed())
	sim := &MockSimulator{}
	sim.On("Simulate", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { fc.Advance(12 * time.Second) }).
		Return(&domain.SimulationResult{Message: "ok"}, nil)

	c := usecase.NewSubmissionController(store, sim, metrics, zap.NewNop(), usecase.WithControllerClock(fc))

	snap, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap.StartedAt)
	require.NotNil(t, snap.FinishedAt)
	assert.Equal(t, 12*time.Second, snap.FinishedAt.Sub(*snap.StartedAt))
}

func TestSubmissionController_PublishesDoneEvent(t *testing.T) {
	store, metrics := newTestStore(t, oneDistrictSeed())
	sim := &MockSimulator{}
	sim.On("Simulate", mock.Anything, mock.Anything).
		Return(&domain.SimulationResult{Message: "ok"}, nil)

	publisher := &MockEventPublisher{}
	publisher.On("PublishToStream", mock.Anything, domain.StreamSimulationDone,
		mock.MatchedBy(func(e domain.SimulationDoneEvent) bool {
			return e.Source == domain.SourceDashboard &&
				e.Status == "success" &&
				e.Districts == 1 &&
				e.Result != nil && e.Result.Message == "ok"
		})).Return(nil)

	c := usecase.NewSubmissionController(store, sim, metrics, zap.NewNop(), usecase.WithEventPublisher(publisher))

	snap, err := c.Submit(context.Background())
	require.NoError(t, err)

	publisher.AssertExpectations(t)
	require.Len(t, publisher.Calls, 1)

	event := publisher.Calls[0].Arguments.Get(2).(domain.SimulationDoneEvent)
	assert.Equal(t, snap.ID, event.RequestID.String())
}
