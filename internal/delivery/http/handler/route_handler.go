package handler

import (
	"github.com/fuelprice-microservice/internal/pkg/utils"
	"github.com/fuelprice-microservice/internal/pkg/validator"
	"github.com/fuelprice-microservice/internal/usecase"
	"github.com/fuelprice-microservice/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler - обработчик запросов расчёта маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Cities godoc
// @Summary Города справочника расстояний
// @Description Возвращает список городов, между которыми известны расстояния, в стабильном порядке
// @Tags Route
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CitiesResponse}
// @Router /api/v1/cities [get]
func (h *RouteHandler) Cities(c *fiber.Ctx) error {
	result := h.routeUC.Cities(c.Context())
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Count})
}

// PlanRoute godoc
// @Summary Расчёт стоимости маршрута
// @Description Считает объём топлива и итоговую стоимость поездки между двумя городами по резервной ценовой таблице. Города должны различаться и быть зарегистрированы в справочнике; расстояние не интерполируется.
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Параметры маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route/plan [post]
func (h *RouteHandler) PlanRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.PlanRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// OptimizeRoute godoc
// @Summary Подбор оптимальных заправок для маршрута
// @Description Подбирает самые дешёвые станции каталога для поездки: итоговая стоимость по лучшей цене, экономия против средней и рекомендуемые остановки
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.OptimizeRequest true "Параметры маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.OptimizeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route/optimize [post]
func (h *RouteHandler) OptimizeRoute(c *fiber.Ctx) error {
	var req dto.OptimizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.OptimizeRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
