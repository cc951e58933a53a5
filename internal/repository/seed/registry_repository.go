package seed

import (
	"context"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/domain/repository"
)

type registryRepository struct {
	districts []domain.District
}

// NewRegistryRepository serves the built-in barangay list.
func NewRegistryRepository() repository.RegistryRepository {
	return &registryRepository{districts: domain.DefaultDistricts()}
}

// NewRegistryRepositoryWith serves a fixed list, used for tests and fixtures.
func NewRegistryRepositoryWith(districts []domain.District) repository.RegistryRepository {
	cp := make([]domain.District, len(districts))
	copy(cp, districts)
	return &registryRepository{districts: cp}
}

func (r *registryRepository) Load(_ context.Context) ([]domain.District, error) {
	out := make([]domain.District, len(r.districts))
	copy(out, r.districts)
	return out, nil
}
