package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/pkg/distance"
	"github.com/fuelprice-microservice/internal/pkg/errors"
	"github.com/fuelprice-microservice/internal/usecase"
	"github.com/fuelprice-microservice/internal/usecase/dto"
)

func gasolineTable() []domain.ProviderPrice {
	return []domain.ProviderPrice{
		{Provider: "Shell", Price: 42.85},
		{Provider: "BP", Price: 42.50},
		{Provider: "Petrol Ofisi", Price: 41.90},
		{Provider: "Opet", Price: 42.15},
	}
}

func TestRouteUseCase_Cities(t *testing.T) {
	logger := zap.NewNop()
	uc := usecase.NewRouteUseCase(&MockPriceReferenceRepository{}, &MockStationRepository{}, distance.MustDefault(), logger, 2)

	resp := uc.Cities(context.Background())
	assert.Equal(t, len(resp.Cities), resp.Count)
	assert.NotEmpty(t, resp.Cities)
	assert.Equal(t, "Istanbul", resp.Cities[0])
}

func TestRouteUseCase_PlanRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ref := distance.MustDefault()

	t.Run("plans route with cheapest provider", func(t *testing.T) {
		mockPrices := &MockPriceReferenceRepository{}
		uc := usecase.NewRouteUseCase(mockPrices, &MockStationRepository{}, ref, logger, 2)

		mockPrices.On("GetPriceTable", ctx, domain.FuelGasoline).Return(gasolineTable(), nil)

		resp, err := uc.PlanRoute(ctx, dto.RouteRequest{
			StartCity:         "Istanbul",
			DestinationCity:   "Ankara",
			VehicleClass:      "gasoline",
			ConsumptionPer100: 7.5,
		})
		require.NoError(t, err)

		assert.Equal(t, 450.0, resp.TotalDistanceKm)
		assert.Equal(t, 33.75, resp.AmountNeeded)
		assert.Equal(t, "L", resp.Unit)
		assert.Equal(t, 1414.13, resp.TotalCost)

		require.Len(t, resp.Stops, 4)
		best := 0
		for _, s := range resp.Stops {
			if s.IsBestPrice {
				best++
				assert.Equal(t, "Petrol Ofisi", s.Provider)
			}
		}
		assert.Equal(t, 1, best)
	})

	t.Run("same start and destination fails before price lookup", func(t *testing.T) {
		mockPrices := &MockPriceReferenceRepository{}
		uc := usecase.NewRouteUseCase(mockPrices, &MockStationRepository{}, ref, logger, 2)

		_, err := uc.PlanRoute(ctx, dto.RouteRequest{
			StartCity:         "Istanbul",
			DestinationCity:   "Istanbul",
			VehicleClass:      "gasoline",
			ConsumptionPer100: 7.5,
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRoute)
		mockPrices.AssertNotCalled(t, "GetPriceTable", ctx, domain.FuelGasoline)
	})

	t.Run("registered but unconnected pair", func(t *testing.T) {
		mockPrices := &MockPriceReferenceRepository{}
		uc := usecase.NewRouteUseCase(mockPrices, &MockStationRepository{}, ref, logger, 2)

		mockPrices.On("GetPriceTable", ctx, domain.FuelDiesel).Return(gasolineTable(), nil)

		_, err := uc.PlanRoute(ctx, dto.RouteRequest{
			StartCity:         "Bursa",
			DestinationCity:   "Antalya",
			VehicleClass:      "diesel",
			ConsumptionPer100: 6.0,
		})
		assert.ErrorIs(t, err, errors.ErrDistanceUnavailable)
	})

	t.Run("missing price table", func(t *testing.T) {
		mockPrices := &MockPriceReferenceRepository{}
		uc := usecase.NewRouteUseCase(mockPrices, &MockStationRepository{}, ref, logger, 2)

		mockPrices.On("GetPriceTable", ctx, domain.FuelEV).Return(nil, errors.ErrMissingPriceData)

		_, err := uc.PlanRoute(ctx, dto.RouteRequest{
			StartCity:         "Istanbul",
			DestinationCity:   "Ankara",
			VehicleClass:      "ev",
			ConsumptionPer100: 19.2,
		})
		assert.ErrorIs(t, err, errors.ErrMissingPriceData)
	})
}

func TestRouteUseCase_OptimizeRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ref := distance.MustDefault()

	t.Run("recommends cheapest stations", func(t *testing.T) {
		mockStations := &MockStationRepository{}
		uc := usecase.NewRouteUseCase(&MockPriceReferenceRepository{}, mockStations, ref, logger, 2)

		mockStations.On("GetByFuelType", ctx, domain.FuelGasoline).Return(gasolineCatalog(), nil)

		resp, err := uc.OptimizeRoute(ctx, dto.OptimizeRequest{
			StartCity:         "Istanbul",
			DestinationCity:   "Ankara",
			FuelType:          "gasoline",
			ConsumptionPer100: 7.5,
		})
		require.NoError(t, err)

		assert.Equal(t, 450.0, resp.TotalDistanceKm)
		assert.Equal(t, 33.75, resp.AmountNeeded)
		assert.Equal(t, "Petrol Ofisi", resp.BestStation.Station.Name)
		assert.Equal(t, 1414.13, resp.EstimatedCost)
		assert.InDelta(t, 42.35, resp.AveragePrice, 0.001)
		assert.InDelta(t, 15.19, resp.SavingsVsAverage, 0.01)

		require.Len(t, resp.RecommendedStops, 2)
		assert.Equal(t, "Petrol Ofisi", resp.RecommendedStops[0].Station.Name)
		assert.Equal(t, "Opet", resp.RecommendedStops[1].Station.Name)
	})

	t.Run("no stations offering fuel type", func(t *testing.T) {
		mockStations := &MockStationRepository{}
		uc := usecase.NewRouteUseCase(&MockPriceReferenceRepository{}, mockStations, ref, logger, 2)

		mockStations.On("GetByFuelType", ctx, domain.FuelLPG).Return([]domain.Station{}, nil)

		_, err := uc.OptimizeRoute(ctx, dto.OptimizeRequest{
			StartCity:         "Istanbul",
			DestinationCity:   "Ankara",
			FuelType:          "lpg",
			ConsumptionPer100: 9.0,
		})
		assert.ErrorIs(t, err, errors.ErrMissingPriceData)
	})

	t.Run("unknown city", func(t *testing.T) {
		uc := usecase.NewRouteUseCase(&MockPriceReferenceRepository{}, &MockStationRepository{}, ref, logger, 2)

		_, err := uc.OptimizeRoute(ctx, dto.OptimizeRequest{
			StartCity:         "Istanbul",
			DestinationCity:   "Trabzon",
			FuelType:          "gasoline",
			ConsumptionPer100: 7.5,
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRoute)
	})

	t.Run("requested stop count is capped by catalog size", func(t *testing.T) {
		mockStations := &MockStationRepository{}
		uc := usecase.NewRouteUseCase(&MockPriceReferenceRepository{}, mockStations, ref, logger, 2)

		catalog := gasolineCatalog()[:2]
		mockStations.On("GetByFuelType", ctx, domain.FuelGasoline).Return(catalog, nil)

		resp, err := uc.OptimizeRoute(ctx, dto.OptimizeRequest{
			StartCity:         "Istanbul",
			DestinationCity:   "Ankara",
			FuelType:          "gasoline",
			ConsumptionPer100: 7.5,
			RecommendedStops:  5,
		})
		require.NoError(t, err)
		assert.Len(t, resp.RecommendedStops, 2)
	})
}
