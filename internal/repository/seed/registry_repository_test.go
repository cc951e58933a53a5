package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/repository/seed"
)

func TestRegistryRepository_LoadReturnsFreshCopies(t *testing.T) {
	repo := seed.NewRegistryRepository()
	ctx := context.Background()

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, first, 27)

	first[0].WaterLevel = 3
	first[0].Personnel.SRR = 9

	second, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, second[0].WaterLevel)
	assert.Zero(t, second[0].Personnel.SRR)
}

func TestRegistryRepositoryWith(t *testing.T) {
	input := []domain.District{{ID: "1", Name: "Hulo"}}
	repo := seed.NewRegistryRepositoryWith(input)

	input[0].Name = "changed"

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hulo", got[0].Name)
}
