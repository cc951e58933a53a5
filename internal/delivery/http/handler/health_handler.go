package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/pkg/utils"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck - проверка доступности зависимого сервиса
type HealthCheck func(ctx context.Context) error

// HealthHandler - liveness и состояние зависимостей
type HealthHandler struct {
	checks map[string]HealthCheck
	logger *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(checks map[string]HealthCheck, logger *zap.Logger) *HealthHandler {
	if checks == nil {
		checks = map[string]HealthCheck{}
	}
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Всегда 200, пока процесс жив. Состояние Redis/PostgreSQL (если подключены) в поле services.
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "healthy"}

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		resp.Services = make(map[string]string, len(h.checks))
		for name, check := range h.checks {
			if err := check(ctx); err != nil {
				h.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
				resp.Services[name] = "unavailable"
				resp.Status = "degraded"
				continue
			}
			resp.Services[name] = "ok"
		}
	}

	return utils.SendSuccess(c, resp, nil)
}
