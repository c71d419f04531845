package ranking_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/pkg/ranking"
)

func station(name, brand string, options ...domain.FuelOption) domain.Station {
	return domain.Station{
		ID:          uuid.New(),
		Name:        name,
		Brand:       brand,
		City:        "Istanbul",
		FuelOptions: options,
	}
}

func gasoline(price float64) domain.FuelOption {
	return domain.FuelOption{FuelType: domain.FuelGasoline, PricePerUnit: price}
}

func TestRankByPrice_ScenarioOrdering(t *testing.T) {
	// gasoline at Shell 42.85, BP 42.50, Petrol Ofisi 41.90, Opet 42.15
	stations := []domain.Station{
		station("Shell Merkez", "Shell", gasoline(42.85)),
		station("BP Kadikoy", "BP", gasoline(42.50)),
		station("PO Maltepe", "Petrol Ofisi", gasoline(41.90)),
		station("Opet Pendik", "Opet", gasoline(42.15)),
	}

	pairs := ranking.StationsOffering(stations, domain.FuelGasoline)
	require.Len(t, pairs, 4)

	ranked := ranking.RankByPrice(pairs)
	require.Len(t, ranked, 4)
	assert.Equal(t, "Petrol Ofisi", ranked[0].Station.Brand)
	assert.Equal(t, 41.90, ranked[0].Price)
	assert.Equal(t, "Opet", ranked[1].Station.Brand)
	assert.Equal(t, 42.15, ranked[1].Price)
	assert.Equal(t, "BP", ranked[2].Station.Brand)
	assert.Equal(t, 42.50, ranked[2].Price)
	assert.Equal(t, "Shell", ranked[3].Station.Brand)
	assert.Equal(t, 42.85, ranked[3].Price)

	cheapest, ok := ranking.Cheapest(pairs)
	require.True(t, ok)
	assert.Equal(t, "Petrol Ofisi", cheapest.Station.Brand)
	assert.Equal(t, 41.90, cheapest.Price)

	assert.InDelta(t, 42.35, ranking.AveragePrice(pairs), 1e-9)
}

func TestRankByPrice_StableOnEqualPrices(t *testing.T) {
	stations := []domain.Station{
		station("First", "A", gasoline(42.00)),
		station("Second", "B", gasoline(41.50)),
		station("Third", "C", gasoline(42.00)),
		station("Fourth", "D", gasoline(42.00)),
	}

	pairs := ranking.StationsOffering(stations, domain.FuelGasoline)
	ranked := ranking.RankByPrice(pairs)

	// equally priced stations keep their relative input order
	assert.Equal(t, "B", ranked[0].Station.Brand)
	assert.Equal(t, "A", ranked[1].Station.Brand)
	assert.Equal(t, "C", ranked[2].Station.Brand)
	assert.Equal(t, "D", ranked[3].Station.Brand)
}

func TestRankByPrice_DeterministicAndPure(t *testing.T) {
	stations := []domain.Station{
		station("One", "X", gasoline(42.00)),
		station("Two", "Y", gasoline(40.00)),
	}
	pairs := ranking.StationsOffering(stations, domain.FuelGasoline)

	first := ranking.RankByPrice(pairs)
	second := ranking.RankByPrice(pairs)
	assert.Equal(t, first, second)

	// the input slice is not reordered
	assert.Equal(t, "X", pairs[0].Station.Brand)
	assert.Equal(t, "Y", pairs[1].Station.Brand)
}

func TestStationsOffering_FiltersByType(t *testing.T) {
	stations := []domain.Station{
		station("Mixed", "Shell",
			gasoline(42.85),
			domain.FuelOption{FuelType: domain.FuelDiesel, PricePerUnit: 44.20},
		),
		station("Diesel only", "BP",
			domain.FuelOption{FuelType: domain.FuelDiesel, PricePerUnit: 43.95}),
		station("No options", "Opet"),
	}

	diesel := ranking.StationsOffering(stations, domain.FuelDiesel)
	require.Len(t, diesel, 2)
	assert.Equal(t, 44.20, diesel[0].Price)
	assert.Equal(t, 43.95, diesel[1].Price)

	lpg := ranking.StationsOffering(stations, domain.FuelLPG)
	assert.Empty(t, lpg)
}

func TestEmptyStationSet(t *testing.T) {
	// stationsOffering([], diesel) -> empty sequence; cheapest -> "no data"
	pairs := ranking.StationsOffering(nil, domain.FuelDiesel)
	assert.Empty(t, pairs)

	_, ok := ranking.Cheapest(pairs)
	assert.False(t, ok)

	assert.Equal(t, 0.0, ranking.AveragePrice(pairs))

	_, ok = ranking.PriceSpread(ranking.RankByPrice(pairs))
	assert.False(t, ok)
}

func TestCheapestOverall(t *testing.T) {
	t.Run("global minimum across all options", func(t *testing.T) {
		stations := []domain.Station{
			station("ZES Mall", "ZES", domain.FuelOption{FuelType: domain.FuelEV, PricePerUnit: 4.80}),
			station("Tesla SC", "Tesla Supercharger", domain.FuelOption{FuelType: domain.FuelEV, PricePerUnit: 4.50}),
			station("Trugo Plaza", "Trugo", domain.FuelOption{FuelType: domain.FuelEV, PricePerUnit: 5.20}),
		}

		best, ok := ranking.CheapestOverall(stations)
		require.True(t, ok)
		assert.Equal(t, "Tesla Supercharger", best.Brand)
	})

	t.Run("tie broken by input order", func(t *testing.T) {
		stations := []domain.Station{
			station("First", "A", domain.FuelOption{FuelType: domain.FuelEV, PricePerUnit: 4.50}),
			station("Second", "B", domain.FuelOption{FuelType: domain.FuelEV, PricePerUnit: 4.50}),
		}

		best, ok := ranking.CheapestOverall(stations)
		require.True(t, ok)
		assert.Equal(t, "A", best.Brand)
	})

	t.Run("no data", func(t *testing.T) {
		_, ok := ranking.CheapestOverall(nil)
		assert.False(t, ok)

		_, ok = ranking.CheapestOverall([]domain.Station{station("Bare", "X")})
		assert.False(t, ok)
	})
}

func TestPriceSpread(t *testing.T) {
	t.Run("delta and percentage", func(t *testing.T) {
		stations := []domain.Station{
			station("Cheap", "A", gasoline(40.00)),
			station("Pricey", "B", gasoline(44.00)),
		}
		ranked := ranking.RankByPrice(ranking.StationsOffering(stations, domain.FuelGasoline))

		spread, ok := ranking.PriceSpread(ranked)
		require.True(t, ok)
		assert.InDelta(t, 4.0, spread.Delta, 1e-9)
		assert.InDelta(t, 10.0, spread.Percentage, 1e-9)
	})

	t.Run("not applicable for fewer than two entries", func(t *testing.T) {
		single := []domain.StationPrice{{Price: 42.0}}
		_, ok := ranking.PriceSpread(single)
		assert.False(t, ok)
	})
}
