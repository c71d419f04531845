package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelprice-microservice/internal/pkg/distance"
)

func TestNew_RejectsBadEdges(t *testing.T) {
	t.Run("empty city name", func(t *testing.T) {
		_, err := distance.New([]distance.Edge{{CityA: "", CityB: "Ankara", Km: 450}})
		assert.ErrorContains(t, err, "empty city name")
	})

	t.Run("self-edge", func(t *testing.T) {
		_, err := distance.New([]distance.Edge{{CityA: "Ankara", CityB: "Ankara", Km: 1}})
		assert.ErrorContains(t, err, "self-edge")
	})

	t.Run("non-positive distance", func(t *testing.T) {
		_, err := distance.New([]distance.Edge{{CityA: "Istanbul", CityB: "Ankara", Km: 0}})
		assert.ErrorContains(t, err, "must be positive")
	})

	t.Run("duplicate pair even when reversed", func(t *testing.T) {
		_, err := distance.New([]distance.Edge{
			{CityA: "Istanbul", CityB: "Ankara", Km: 450},
			{CityA: "Ankara", CityB: "Istanbul", Km: 451},
		})
		assert.ErrorContains(t, err, "duplicate pair")
	})
}

func TestReference_Symmetry(t *testing.T) {
	ref := distance.MustDefault()

	// distance(A,B) == distance(B,A) for every registered pair
	cities := ref.Cities()
	for _, a := range cities {
		for _, b := range cities {
			ab, okAB := ref.Between(a, b)
			ba, okBA := ref.Between(b, a)
			assert.Equal(t, okAB, okBA, "%s-%s", a, b)
			assert.Equal(t, ab, ba, "%s-%s", a, b)
		}
	}
}

func TestReference_Between(t *testing.T) {
	ref := distance.MustDefault()

	t.Run("registered pair resolves", func(t *testing.T) {
		km, ok := ref.Between("Istanbul", "Ankara")
		require.True(t, ok)
		assert.Equal(t, 450.0, km)
	})

	t.Run("same city never resolves", func(t *testing.T) {
		_, ok := ref.Between("Istanbul", "Istanbul")
		assert.False(t, ok)
	})

	t.Run("valid but unconnected cities do not resolve", func(t *testing.T) {
		require.True(t, ref.Knows("Bursa"))
		require.True(t, ref.Knows("Antalya"))
		_, ok := ref.Between("Bursa", "Antalya")
		assert.False(t, ok)
	})

	t.Run("matching is case-sensitive and exact", func(t *testing.T) {
		_, ok := ref.Between("istanbul", "Ankara")
		assert.False(t, ok)
		assert.False(t, ref.Knows("ISTANBUL"))
	})
}

func TestReference_CitiesOrderStable(t *testing.T) {
	ref := distance.MustDefault()

	first := ref.Cities()
	second := ref.Cities()
	assert.Equal(t, first, second)

	// registration order follows first appearance in the edge list
	assert.Equal(t, "Istanbul", first[0])
	assert.Equal(t, "Ankara", first[1])

	// mutating the returned slice must not affect the reference
	first[0] = "Mordor"
	assert.Equal(t, "Istanbul", ref.Cities()[0])
}
