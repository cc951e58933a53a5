package repository

import (
	"context"

	"github.com/emergency-response-dashboard/internal/domain"
)

// RegistryRepository - источник исходного списка районов
type RegistryRepository interface {
	// Load возвращает реестр в порядке отображения, каждый раз новый слайс
	Load(ctx context.Context) ([]domain.District, error)
}
