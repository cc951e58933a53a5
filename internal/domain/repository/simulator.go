package repository

import (
	"context"

	"github.com/emergency-response-dashboard/internal/domain"
)

// Simulator - стратегия вызова симуляции (mock или внешний HTTP сервис)
type Simulator interface {
	Simulate(ctx context.Context, districts []domain.DistrictPayload) (*domain.SimulationResult, error)
}

// ServiceStatusRepository - чтение статуса сервиса симуляции
type ServiceStatusRepository interface {
	Status(ctx context.Context) (map[string]interface{}, error)
}
