package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/observability"
	"github.com/emergency-response-dashboard/internal/pkg/errors"
)

// DistrictStore - рабочая копия реестра на время сессии.
// Набор id не меняется, изменяются только уровень воды и персонал.
type DistrictStore struct {
	mu        sync.RWMutex
	seed      []domain.District
	districts []domain.District
	index     map[string]int

	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewDistrictStore - создание хранилища из реестра
func NewDistrictStore(seed []domain.District, metrics *observability.Metrics, logger *zap.Logger) (*DistrictStore, error) {
	if err := ValidateRegistry(seed, logger); err != nil {
		return nil, err
	}

	s := &DistrictStore{
		seed:      make([]domain.District, len(seed)),
		districts: make([]domain.District, len(seed)),
		index:     make(map[string]int, len(seed)),
		metrics:   metrics,
		logger:    logger,
	}
	copy(s.seed, seed)
	copy(s.districts, seed)
	for i, d := range seed {
		s.index[d.ID] = i
	}

	return s, nil
}

// Get - район по идентификатору
func (s *DistrictStore) Get(id string) (domain.District, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.District{}, errors.ErrDistrictNotFound
	}
	return s.districts[i], nil
}

// List - все районы в порядке реестра
func (s *DistrictStore) List() []domain.District {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.District, len(s.districts))
	copy(out, s.districts)
	return out
}

// Registry - исходные данные, к которым возвращает ResetAll
func (s *DistrictStore) Registry() []domain.District {
	out := make([]domain.District, len(s.seed))
	copy(out, s.seed)
	return out
}

// Update - применяет к району только переданные поля
func (s *DistrictStore) Update(id string, patch domain.DistrictPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return errors.ErrDistrictNotFound
	}
	if patch.IsEmpty() {
		return nil
	}

	s.districts[i] = patch.Apply(s.districts[i])
	s.metrics.DistrictUpdates.Inc()

	s.logger.Debug("District updated",
		zap.String("id", id),
		zap.Float64("water_level", s.districts[i].WaterLevel),
		zap.Int("personnel", s.districts[i].Personnel.Total()))

	return nil
}

// ResetAll - восстанавливает все записи из исходных данных
func (s *DistrictStore) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy(s.districts, s.seed)
	s.metrics.StoreResets.Inc()

	s.logger.Info("District store reset", zap.Int("districts", len(s.districts)))
}

// Payload - данные хранилища для отправки в сервис симуляции (без координат)
func (s *DistrictStore) Payload() []domain.DistrictPayload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DistrictPayload, 0, len(s.districts))
	for _, d := range s.districts {
		out = append(out, d.Payload())
	}
	return out
}
