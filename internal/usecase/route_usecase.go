package usecase

import (
	"context"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/domain/repository"
	"github.com/fuelprice-microservice/internal/pkg/distance"
	"github.com/fuelprice-microservice/internal/pkg/errors"
	"github.com/fuelprice-microservice/internal/pkg/ranking"
	"github.com/fuelprice-microservice/internal/pkg/routeplan"
	"github.com/fuelprice-microservice/internal/pkg/utils"
	"github.com/fuelprice-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteUseCase обрабатывает бизнес-логику расчёта маршрутов
type RouteUseCase struct {
	priceRef         repository.PriceReferenceRepository
	stationRepo      repository.StationRepository
	distances        *distance.Reference
	logger           *zap.Logger
	recommendedStops int
}

// NewRouteUseCase создает новый экземпляр RouteUseCase
func NewRouteUseCase(
	priceRef repository.PriceReferenceRepository,
	stationRepo repository.StationRepository,
	distances *distance.Reference,
	logger *zap.Logger,
	recommendedStops int,
) *RouteUseCase {
	if recommendedStops <= 0 {
		recommendedStops = 2
	}
	return &RouteUseCase{
		priceRef:         priceRef,
		stationRepo:      stationRepo,
		distances:        distances,
		logger:           logger,
		recommendedStops: recommendedStops,
	}
}

// Cities возвращает города справочника расстояний в стабильном порядке
func (uc *RouteUseCase) Cities(ctx context.Context) *dto.CitiesResponse {
	cities := uc.distances.Cities()
	return &dto.CitiesResponse{
		Cities: cities,
		Count:  len(cities),
	}
}

// PlanRoute считает стоимость маршрута по резервной ценовой таблице
func (uc *RouteUseCase) PlanRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	query := domain.RouteQuery{
		StartCity:         req.StartCity,
		DestinationCity:   req.DestinationCity,
		VehicleClass:      domain.FuelType(req.VehicleClass),
		ConsumptionPer100: req.ConsumptionPer100,
	}

	// Города проверяются до запроса ценовой таблицы: ошибка запроса
	// не должна маскироваться отсутствием цен
	if err := routeplan.ValidateCities(uc.distances, query.StartCity, query.DestinationCity); err != nil {
		return nil, err
	}

	table, err := uc.priceRef.GetPriceTable(ctx, query.VehicleClass)
	if err != nil {
		return nil, err
	}

	result, err := routeplan.Calculate(query, uc.distances, table)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Route planned",
		zap.String("start", query.StartCity),
		zap.String("destination", query.DestinationCity),
		zap.Float64("total_cost", result.TotalCost))

	return dto.NewRouteResponse(query, result), nil
}

// OptimizeRoute подбирает самые дешёвые станции каталога для маршрута:
// итог по лучшей цене, экономия против средней и N рекомендуемых остановок
func (uc *RouteUseCase) OptimizeRoute(ctx context.Context, req dto.OptimizeRequest) (*dto.OptimizeResponse, error) {
	ft := domain.FuelType(req.FuelType)
	if !ft.Valid() {
		return nil, errors.ErrInvalidFuelType
	}
	if req.ConsumptionPer100 <= 0 {
		return nil, errors.ErrInvalidConsumption
	}

	if err := routeplan.ValidateCities(uc.distances, req.StartCity, req.DestinationCity); err != nil {
		return nil, err
	}

	// Та же строгая таблица расстояний, что и у калькулятора: пара либо
	// зарегистрирована напрямую, либо расстояние недоступно
	dist, ok := uc.distances.Between(req.StartCity, req.DestinationCity)
	if !ok {
		return nil, errors.ErrDistanceUnavailable
	}

	stations, err := uc.stationRepo.GetByFuelType(ctx, ft)
	if err != nil {
		return nil, err
	}

	ranked := ranking.RankByPrice(ranking.StationsOffering(stations, ft))
	best, ok := ranking.Cheapest(ranked)
	if !ok {
		return nil, errors.ErrMissingPriceData
	}

	amountNeeded := dist * req.ConsumptionPer100 / 100
	avg := ranking.AveragePrice(ranked)

	stops := req.RecommendedStops
	if stops <= 0 {
		stops = uc.recommendedStops
	}
	if stops > len(ranked) {
		stops = len(ranked)
	}

	return &dto.OptimizeResponse{
		StartCity:        req.StartCity,
		DestinationCity:  req.DestinationCity,
		FuelType:         string(ft),
		TotalDistanceKm:  dist,
		AmountNeeded:     utils.Round2(amountNeeded),
		Unit:             ft.Unit(),
		BestStation:      dto.StationPriceDTO{Station: dto.NewStationDTO(best.Station), Price: best.Price},
		EstimatedCost:    utils.Round2(amountNeeded * best.Price),
		AveragePrice:     utils.Round2(avg),
		SavingsVsAverage: utils.Round2(amountNeeded*avg - amountNeeded*best.Price),
		RecommendedStops: dto.NewStationPriceDTOs(ranked[:stops]),
	}, nil
}
