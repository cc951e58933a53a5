package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/pkg/utils"
	"github.com/emergency-response-dashboard/internal/usecase"
)

// SummaryHandler обрабатывает запросы сводки
type SummaryHandler struct {
	summaryUC *usecase.SummaryUseCase
	logger    *zap.Logger
}

// NewSummaryHandler создает новый экземпляр SummaryHandler
func NewSummaryHandler(summaryUC *usecase.SummaryUseCase, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: summaryUC,
		logger:    logger,
	}
}

// GetSummary godoc
// @Summary Сводка по районам
// @Description Итоги по персоналу, средний уровень воды, число районов с высоким уровнем и статус каждого района
// @Tags Summary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SummaryResponse}
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	summary := h.summaryUC.GetSummary()
	return utils.SendSuccess(c, summary, &utils.Meta{Total: summary.DistrictCount})
}
