package handler

import (
	"github.com/fuelprice-microservice/internal/pkg/utils"
	"github.com/fuelprice-microservice/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StationHandler - обработчик каталога станций
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler - создание нового StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// GetStations godoc
// @Summary Список станций
// @Description Возвращает станции каталога с их ценами, опционально отфильтрованные по городу
// @Tags Stations
// @Accept json
// @Produce json
// @Param city query string false "Фильтр по городу (точное совпадение)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StationDTO}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stations [get]
func (h *StationHandler) GetStations(c *fiber.Ctx) error {
	city := c.Query("city")

	var err error
	var result interface{}
	if city != "" {
		result, err = h.stationUC.GetByCity(c.Context(), city)
	} else {
		result, err = h.stationUC.GetAll(c.Context())
	}
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetStationByID godoc
// @Summary Станция по идентификатору
// @Description Возвращает одну станцию каталога со всеми её топливными опциями
// @Tags Stations
// @Accept json
// @Produce json
// @Param id path string true "UUID станции"
// @Success 200 {object} utils.SuccessResponse{data=dto.StationDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stations/{id} [get]
func (h *StationHandler) GetStationByID(c *fiber.Ctx) error {
	result, err := h.stationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
