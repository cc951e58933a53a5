package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/pkg/utils"
	"github.com/emergency-response-dashboard/internal/pkg/validator"
	"github.com/emergency-response-dashboard/internal/usecase"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

// DistrictHandler - обработчик запросов к хранилищу районов
type DistrictHandler struct {
	store      *usecase.DistrictStore
	controller *usecase.SubmissionController
	logger     *zap.Logger
}

// NewDistrictHandler - создание нового DistrictHandler
func NewDistrictHandler(
	store *usecase.DistrictStore,
	controller *usecase.SubmissionController,
	logger *zap.Logger,
) *DistrictHandler {
	return &DistrictHandler{
		store:      store,
		controller: controller,
		logger:     logger,
	}
}

// List godoc
// @Summary Список районов
// @Description Возвращает все районы в порядке реестра с текущим уровнем воды и персоналом
// @Tags Districts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.DistrictResponse}
// @Router /api/v1/districts [get]
func (h *DistrictHandler) List(c *fiber.Ctx) error {
	districts := dto.ConvertDistricts(h.store.List())
	return utils.SendSuccess(c, districts, &utils.Meta{Total: len(districts)})
}

// Get godoc
// @Summary Район по ID
// @Tags Districts
// @Produce json
// @Param id path string true "ID района"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id} [get]
func (h *DistrictHandler) Get(c *fiber.Ctx) error {
	id, err := districtID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	d, err := h.store.Get(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertDistrict(d), nil)
}

// Update godoc
// @Summary Частичное обновление района
// @Description Обновляет только переданные поля (waterLevel и/или personnel). Значения должны быть >= 0.
// @Tags Districts
// @Accept json
// @Produce json
// @Param id path string true "ID района"
// @Param request body dto.UpdateDistrictRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id} [patch]
func (h *DistrictHandler) Update(c *fiber.Ctx) error {
	id, err := districtID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateDistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.store.Update(id, req.ToPatch()); err != nil {
		return utils.SendError(c, err)
	}

	d, err := h.store.Get(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertDistrict(d), nil)
}

// Reset godoc
// @Summary Сброс к исходным данным
// @Description Возвращает все районы к значениям реестра и сбрасывает состояние симуляции. Ответ выполняющейся симуляции будет отброшен.
// @Tags Districts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.DistrictResponse}
// @Router /api/v1/districts/reset [post]
func (h *DistrictHandler) Reset(c *fiber.Ctx) error {
	h.controller.Reset()

	districts := dto.ConvertDistricts(h.store.List())
	return utils.SendSuccess(c, districts, &utils.Meta{Total: len(districts)})
}

// districtID - чтение и проверка параметра :id. Значение копируется,
// fiber переиспользует буфер после выхода из обработчика.
func districtID(c *fiber.Ctx) (string, error) {
	param := dto.DistrictIDParam{ID: strings.Clone(c.Params("id"))}
	if err := validator.Validate(&param); err != nil {
		return "", errors.ErrInvalidDistrictID.WithDetails(map[string]interface{}{
			"id": param.ID,
		})
	}
	return param.ID, nil
}
