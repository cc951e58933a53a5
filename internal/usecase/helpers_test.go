package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/observability"
	"github.com/emergency-response-dashboard/internal/usecase"
)

func newTestStore(t *testing.T, seed []domain.District) (*usecase.DistrictStore, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetricsForTesting()
	store, err := usecase.NewDistrictStore(seed, metrics, zap.NewNop())
	require.NoError(t, err)
	return store, metrics
}

func oneDistrictSeed() []domain.District {
	return []domain.District{
		{ID: "1", Name: "Addition Hills", Position: domain.Position{X: 280, Y: 425}},
	}
}

func threeDistrictSeed() []domain.District {
	return []domain.District{
		{ID: "1", Name: "Addition Hills", Position: domain.Position{X: 280, Y: 425}},
		{ID: "2", Name: "Bagong Silang", Position: domain.Position{X: 215, Y: 280}},
		{ID: "3", Name: "Barangka Drive", Position: domain.Position{X: 290, Y: 750}},
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
