package handler

import (
	"github.com/fuelprice-microservice/internal/pkg/utils"
	"github.com/fuelprice-microservice/internal/pkg/validator"
	"github.com/fuelprice-microservice/internal/usecase"
	"github.com/fuelprice-microservice/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CompareHandler - обработчик запросов сравнения цен
type CompareHandler struct {
	compareUC *usecase.CompareUseCase
	logger    *zap.Logger
}

// NewCompareHandler - создание нового CompareHandler
func NewCompareHandler(compareUC *usecase.CompareUseCase, logger *zap.Logger) *CompareHandler {
	return &CompareHandler{
		compareUC: compareUC,
		logger:    logger,
	}
}

// Compare godoc
// @Summary Сравнение цен станций по типу топлива
// @Description Возвращает станции, отранжированные по возрастанию цены выбранного типа топлива, со сводкой: самая низкая цена, средняя и разброс. Пустой каталог - пустой список, а не ошибка.
// @Tags Compare
// @Accept json
// @Produce json
// @Param fuel_type query string true "Тип топлива (gasoline, diesel, lpg, ev)"
// @Success 200 {object} utils.SuccessResponse{data=dto.CompareResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/compare [get]
func (h *CompareHandler) Compare(c *fiber.Ctx) error {
	req := dto.CompareRequest{
		FuelType: c.Query("fuel_type"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.compareUC.CompareByFuelType(c.Context(), req.FuelType)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Stations),
	})
}

// Summary godoc
// @Summary Сводка лучших цен по типам топлива
// @Description Возвращает карточки с минимальной ценой, самой дешёвой станцией и потенциальной экономией для каждого жидкого типа топлива
// @Tags Compare
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SummaryResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/compare/summary [get]
func (h *CompareHandler) Summary(c *fiber.Ctx) error {
	result, err := h.compareUC.Summary(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CompareEV godoc
// @Summary Сравнение зарядных станций
// @Description Возвращает зарядные станции, отранжированные по цене за кВт·ч, с диапазоном цен и экономией между самой дорогой и самой дешёвой
// @Tags Compare
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.EVCompareResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/compare/ev [get]
func (h *CompareHandler) CompareEV(c *fiber.Ctx) error {
	result, err := h.compareUC.CompareEV(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Stations),
	})
}
