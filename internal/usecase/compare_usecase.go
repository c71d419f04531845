package usecase

import (
	"context"
	"time"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/domain/repository"
	"github.com/fuelprice-microservice/internal/pkg/errors"
	"github.com/fuelprice-microservice/internal/pkg/ranking"
	"github.com/fuelprice-microservice/internal/pkg/utils"
	"github.com/fuelprice-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// CompareUseCase обрабатывает бизнес-логику сравнения цен по станциям
type CompareUseCase struct {
	stationRepo repository.StationRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewCompareUseCase создает новый экземпляр CompareUseCase
func NewCompareUseCase(
	stationRepo repository.StationRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CompareUseCase {
	return &CompareUseCase{
		stationRepo: stationRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// rankedByFuelType возвращает станции, отранжированные по цене данного
// типа топлива, используя кеш когда возможно
func (uc *CompareUseCase) rankedByFuelType(ctx context.Context, ft domain.FuelType) ([]domain.StationPrice, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetRanking(ctx, ft)
	if err == nil && cached != nil {
		uc.logger.Debug("Ranking fetched from cache", zap.String("fuel_type", string(ft)))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get ranking from cache",
			zap.String("fuel_type", string(ft)), zap.Error(err))
	}

	// 2. Получаем из БД и ранжируем
	stations, err := uc.stationRepo.GetByFuelType(ctx, ft)
	if err != nil {
		return nil, err
	}
	ranked := ranking.RankByPrice(ranking.StationsOffering(stations, ft))

	// 3. Кешируем, ошибка кеша не фатальна
	if err := uc.cacheRepo.SetRanking(ctx, ft, ranked, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache ranking",
			zap.String("fuel_type", string(ft)), zap.Error(err))
	}

	return ranked, nil
}

// CompareByFuelType возвращает отранжированный список станций со сводкой.
// Пустой каталог - это пустой список, а не ошибка.
func (uc *CompareUseCase) CompareByFuelType(ctx context.Context, fuelType string) (*dto.CompareResponse, error) {
	ft := domain.FuelType(fuelType)
	if !ft.Valid() {
		return nil, errors.ErrInvalidFuelType
	}

	ranked, err := uc.rankedByFuelType(ctx, ft)
	if err != nil {
		return nil, err
	}

	resp := &dto.CompareResponse{
		FuelType: string(ft),
		Unit:     ft.Unit(),
		Stations: dto.NewStationPriceDTOs(ranked),
		Summary: dto.CompareSummary{
			AveragePrice: utils.Round2(ranking.AveragePrice(ranked)),
		},
	}

	if cheapest, ok := ranking.Cheapest(ranked); ok {
		resp.Summary.CheapestStation = cheapest.Station.Name
		resp.Summary.CheapestPrice = cheapest.Price
	}
	if spread, ok := ranking.PriceSpread(ranked); ok {
		delta := utils.Round2(spread.Delta)
		pct := utils.Round2(spread.Percentage)
		resp.Summary.SpreadDelta = &delta
		resp.Summary.SpreadPercentage = &pct
	}

	return resp, nil
}

// Summary возвращает карточки лучших цен по всем жидким видам топлива
func (uc *CompareUseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	stations, err := uc.stationRepo.GetByFuelTypes(ctx, domain.LiquidFuelTypes)
	if err != nil {
		return nil, err
	}

	resp := &dto.SummaryResponse{Cards: []dto.SummaryCard{}}
	for _, ft := range domain.LiquidFuelTypes {
		ranked := ranking.RankByPrice(ranking.StationsOffering(stations, ft))
		cheapest, ok := ranking.Cheapest(ranked)
		if !ok {
			// Нет данных по этому типу - карточка не строится
			continue
		}

		avg := ranking.AveragePrice(ranked)
		resp.Cards = append(resp.Cards, dto.SummaryCard{
			FuelType:         string(ft),
			Unit:             ft.Unit(),
			LowestPrice:      cheapest.Price,
			CheapestStation:  cheapest.Station.Name,
			PotentialSavings: utils.Round2(avg - cheapest.Price),
			StationCount:     len(ranked),
		})
	}

	return resp, nil
}

// CompareEV возвращает зарядные станции, отранжированные по цене за кВт·ч
func (uc *CompareUseCase) CompareEV(ctx context.Context) (*dto.EVCompareResponse, error) {
	stations, err := uc.stationRepo.GetByFuelType(ctx, domain.FuelEV)
	if err != nil {
		return nil, err
	}

	ranked := ranking.RankByPrice(ranking.StationsOffering(stations, domain.FuelEV))
	resp := &dto.EVCompareResponse{
		Stations: dto.NewStationPriceDTOs(ranked),
	}

	// У зарядной станции одно ценовое измерение, глобальный минимум
	// совпадает с минимумом по кВт·ч
	if station, ok := ranking.CheapestOverall(stations); ok {
		price, _ := station.PriceFor(domain.FuelEV)
		resp.Cheapest = &dto.StationPriceDTO{
			Station: dto.NewStationDTO(station),
			Price:   price,
		}
	}

	if spread, ok := ranking.PriceSpread(ranked); ok {
		min := ranked[0].Price
		resp.PriceRange = &dto.PriceRangeDTO{
			Min: min,
			Max: ranked[len(ranked)-1].Price,
		}
		resp.SavingsPerKWh = utils.Round2(spread.Delta)
	}

	return resp, nil
}
