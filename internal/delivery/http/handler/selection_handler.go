package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/pkg/utils"
	"github.com/emergency-response-dashboard/internal/usecase"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

// SelectionHandler - диалог редактирования выбранного района
type SelectionHandler struct {
	session *usecase.EditSession
	logger  *zap.Logger
}

// NewSelectionHandler - создание нового SelectionHandler
func NewSelectionHandler(session *usecase.EditSession, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		session: session,
		logger:  logger,
	}
}

// Select godoc
// @Summary Открыть диалог редактирования
// @Description Выбирает район (клик по маркеру) и возвращает поля формы, заполненные текущими значениями
// @Tags Selection
// @Produce json
// @Param id path string true "ID района"
// @Success 200 {object} utils.SuccessResponse{data=dto.EditFormResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id}/select [post]
func (h *SelectionHandler) Select(c *fiber.Ctx) error {
	id, err := districtID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	form, err := h.session.Select(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, form, nil)
}

// Current godoc
// @Summary Текущий выбранный район
// @Tags Selection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.EditFormResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/selection [get]
func (h *SelectionHandler) Current(c *fiber.Ctx) error {
	form, err := h.session.Current()
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, form, nil)
}

// Commit godoc
// @Summary Сохранить форму редактирования
// @Description Поля формы передаются строками. Нечисловые значения превращаются в 0 без ошибки. После сохранения диалог закрывается.
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body dto.EditFormRequest true "Поля формы"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/selection/commit [post]
func (h *SelectionHandler) Commit(c *fiber.Ctx) error {
	var req dto.EditFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	d, err := h.session.Commit(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertDistrict(d), nil)
}

// Cancel godoc
// @Summary Закрыть диалог без сохранения
// @Tags Selection
// @Success 204
// @Router /api/v1/selection [delete]
func (h *SelectionHandler) Cancel(c *fiber.Ctx) error {
	h.session.Cancel()
	return c.SendStatus(fiber.StatusNoContent)
}
