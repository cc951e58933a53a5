package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/pkg/utils"
	"github.com/emergency-response-dashboard/internal/usecase"
)

// SimulationHandler - запуск симуляции и статус
type SimulationHandler struct {
	controller *usecase.SubmissionController
	serviceUC  *usecase.SimulationServiceUseCase
	logger     *zap.Logger
}

// NewSimulationHandler - создание нового SimulationHandler
func NewSimulationHandler(
	controller *usecase.SubmissionController,
	serviceUC *usecase.SimulationServiceUseCase,
	logger *zap.Logger,
) *SimulationHandler {
	return &SimulationHandler{
		controller: controller,
		serviceUC:  serviceUC,
		logger:     logger,
	}
}

// Start godoc
// @Summary Запуск симуляции
// @Description Отправляет текущие данные районов (без координат) в сервис симуляции. Выполняется в фоне, результат доступен через GET /simulation.
// @Tags Simulation
// @Produce json
// @Success 202 {object} utils.SuccessResponse{data=dto.SubmissionResponse}
// @Failure 409 {object} utils.ErrorResponse "Симуляция уже выполняется"
// @Router /api/v1/simulation [post]
func (h *SimulationHandler) Start(c *fiber.Ctx) error {
	snap, err := h.controller.Start(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAccepted(c, snap)
}

// Snapshot godoc
// @Summary Состояние симуляции
// @Description idle, submitting, success или failed. В состоянии success содержит результат, в failed сообщение об ошибке.
// @Tags Simulation
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SubmissionResponse}
// @Router /api/v1/simulation [get]
func (h *SimulationHandler) Snapshot(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.controller.Snapshot(), nil)
}

// ServiceStatus godoc
// @Summary Доступность сервиса симуляции
// @Tags Simulation
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ServiceStatusResponse}
// @Router /api/v1/simulation/service [get]
func (h *SimulationHandler) ServiceStatus(c *fiber.Ctx) error {
	status, err := h.serviceUC.Status(c.UserContext())
	if err != nil {
		if stderrors.Is(err, domain.ErrFetchAborted) {
			h.logger.Debug("Service status request aborted")
			return nil
		}
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, status, nil)
}
