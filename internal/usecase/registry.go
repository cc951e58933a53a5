package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"github.com/emergency-response-dashboard/internal/pkg/errors"
)

// LoadRegistry - загрузка и проверка реестра районов
func LoadRegistry(ctx context.Context, repo repository.RegistryRepository, logger *zap.Logger) ([]domain.District, error) {
	districts, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load district registry: %w", err)
	}

	if err := ValidateRegistry(districts, logger); err != nil {
		return nil, err
	}

	logger.Info("District registry loaded", zap.Int("districts", len(districts)))
	return districts, nil
}

// ValidateRegistry - реестр не пуст, id непустые и уникальные.
// Повтор имени допускается, но пишется в лог.
func ValidateRegistry(districts []domain.District, logger *zap.Logger) error {
	if len(districts) == 0 {
		return errors.ErrInvalidRegistry.WithDetails(map[string]interface{}{
			"reason": "registry is empty",
		})
	}

	ids := make(map[string]struct{}, len(districts))
	names := make(map[string]string, len(districts))

	for i, d := range districts {
		if d.ID == "" {
			return errors.ErrInvalidRegistry.WithDetails(map[string]interface{}{
				"reason": "empty district id",
				"index":  i,
			})
		}
		if _, dup := ids[d.ID]; dup {
			return errors.ErrInvalidRegistry.WithDetails(map[string]interface{}{
				"reason": "duplicate district id",
				"id":     d.ID,
			})
		}
		ids[d.ID] = struct{}{}

		if other, dup := names[d.Name]; dup {
			logger.Warn("Duplicate district name in registry",
				zap.String("name", d.Name),
				zap.String("id", d.ID),
				zap.String("other_id", other))
			continue
		}
		names[d.Name] = d.ID
	}

	return nil
}
