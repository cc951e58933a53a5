package usecase_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/observability"
	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/usecase"
)

func TestNewDistrictStore_InvalidRegistry(t *testing.T) {
	metrics := observability.NewMetricsForTesting()

	_, err := usecase.NewDistrictStore(nil, metrics, zap.NewNop())
	assert.ErrorIs(t, err, errors.ErrInvalidRegistry)

	dup := []domain.District{{ID: "1", Name: "A"}, {ID: "1", Name: "B"}}
	_, err = usecase.NewDistrictStore(dup, metrics, zap.NewNop())
	assert.ErrorIs(t, err, errors.ErrInvalidRegistry)
}

func TestDistrictStore_Get(t *testing.T) {
	store, _ := newTestStore(t, threeDistrictSeed())

	d, err := store.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Bagong Silang", d.Name)

	_, err = store.Get("99")
	assert.ErrorIs(t, err, errors.ErrDistrictNotFound)
}

func TestDistrictStore_ListKeepsRegistryOrder(t *testing.T) {
	store, _ := newTestStore(t, domain.DefaultDistricts())

	list := store.List()
	require.Len(t, list, 27)
	for i, d := range list {
		assert.Equal(t, domain.DefaultDistricts()[i].ID, d.ID)
	}

	list[0].WaterLevel = 42
	d, _ := store.Get(list[0].ID)
	assert.Zero(t, d.WaterLevel, "List must return copies")
}

func TestDistrictStore_UpdateIsolated(t *testing.T) {
	store, metrics := newTestStore(t, threeDistrictSeed())
	require.NoError(t, store.Update("3", domain.DistrictPatch{
		Personnel: &domain.PersonnelCount{SRR: 5, Health: 2, Log: 1},
	}))
	before := store.List()

	require.NoError(t, store.Update("2", domain.DistrictPatch{WaterLevel: float64Ptr(1.5)}))

	after := store.List()
	for i := range before {
		if after[i].ID == "2" {
			expected := before[i]
			expected.WaterLevel = 1.5
			assert.Equal(t, expected, after[i])
			continue
		}
		assert.Equal(t, before[i], after[i])
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.DistrictUpdates))
}

func TestDistrictStore_UpdateMergesPersonnelOnly(t *testing.T) {
	store, _ := newTestStore(t, threeDistrictSeed())
	require.NoError(t, store.Update("1", domain.DistrictPatch{WaterLevel: float64Ptr(2.5)}))

	require.NoError(t, store.Update("1", domain.DistrictPatch{
		Personnel: &domain.PersonnelCount{SRR: 1},
	}))

	d, _ := store.Get("1")
	assert.Equal(t, 2.5, d.WaterLevel)
	assert.Equal(t, domain.PersonnelCount{SRR: 1}, d.Personnel)
	assert.Equal(t, domain.Position{X: 280, Y: 425}, d.Position)
	assert.Equal(t, "Addition Hills", d.Name)
}

func TestDistrictStore_UpdateUnknown(t *testing.T) {
	store, _ := newTestStore(t, threeDistrictSeed())

	err := store.Update("nope", domain.DistrictPatch{WaterLevel: float64Ptr(1)})
	assert.ErrorIs(t, err, errors.ErrDistrictNotFound)
}

func TestDistrictStore_ResetAll(t *testing.T) {
	seed := domain.DefaultDistricts()
	store, metrics := newTestStore(t, seed)

	for _, d := range seed {
		require.NoError(t, store.Update(d.ID, domain.DistrictPatch{
			WaterLevel: float64Ptr(3.3),
			Personnel:  &domain.PersonnelCount{SRR: 1, Health: 2, Log: 3},
		}))
	}

	store.ResetAll()

	for i, d := range store.List() {
		assert.Zero(t, d.WaterLevel)
		assert.Equal(t, domain.PersonnelCount{}, d.Personnel)
		assert.Equal(t, seed[i].ID, d.ID)
		assert.Equal(t, seed[i].Position, d.Position)
	}
	assert.Equal(t, seed, store.Registry(), "edits must never reach the seed")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreResets))
}

func TestDistrictStore_Payload(t *testing.T) {
	store, _ := newTestStore(t, threeDistrictSeed())
	require.NoError(t, store.Update("1", domain.DistrictPatch{WaterLevel: float64Ptr(3)}))

	payload := store.Payload()
	require.Len(t, payload, 3)
	assert.Equal(t, domain.DistrictPayload{ID: "1", Name: "Addition Hills", WaterLevel: 3}, payload[0])
}
