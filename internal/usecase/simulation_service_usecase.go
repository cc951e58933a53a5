package usecase

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/domain/repository"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

// SimulationServiceUseCase - проверка доступности внешнего сервиса симуляции
type SimulationServiceUseCase struct {
	statusRepo repository.ServiceStatusRepository
	mode       string
	baseURL    string
	logger     *zap.Logger
}

// NewSimulationServiceUseCase - создание SimulationServiceUseCase
func NewSimulationServiceUseCase(
	statusRepo repository.ServiceStatusRepository,
	cfg *config.SimulationConfig,
	logger *zap.Logger,
) *SimulationServiceUseCase {
	return &SimulationServiceUseCase{
		statusRepo: statusRepo,
		mode:       cfg.Mode,
		baseURL:    cfg.BaseURL,
		logger:     logger,
	}
}

// Status - опрос сервиса. Ошибки попадают в ответ,
// наружу возвращается только domain.ErrFetchAborted.
func (uc *SimulationServiceUseCase) Status(ctx context.Context) (*dto.ServiceStatusResponse, error) {
	resp := &dto.ServiceStatusResponse{Mode: uc.mode}

	if uc.mode == config.SimulationModeMock {
		resp.Reachable = true
		return resp, nil
	}

	resp.BaseURL = uc.baseURL
	status, err := uc.statusRepo.Status(ctx)
	if err != nil {
		if stderrors.Is(err, domain.ErrFetchAborted) {
			return nil, err
		}
		resp.Error = err.Error()
		return resp, nil
	}

	resp.Reachable = true
	resp.Status = status
	return resp, nil
}
