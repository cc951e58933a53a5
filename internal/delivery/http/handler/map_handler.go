package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/pkg/utils"
	"github.com/emergency-response-dashboard/internal/usecase"
)

// MapHandler - маркеры и легенда карты
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// Markers godoc
// @Summary Маркеры карты
// @Description Позиция маркера в процентах от изображения карты (600x900), цвет по уровню воды и текст подсказки
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.MarkerResponse}
// @Router /api/v1/map/markers [get]
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	markers := h.mapUC.Markers()
	return utils.SendSuccess(c, markers, &utils.Meta{Total: len(markers)})
}

// Legend godoc
// @Summary Легенда карты
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LegendEntry}
// @Router /api/v1/map/legend [get]
func (h *MapHandler) Legend(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.mapUC.Legend(), nil)
}
