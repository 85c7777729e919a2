// Package genetic_test provides lightweight helpers shared across the
// *_test.go files of this package: canonical instances, permutation
// assertions and deterministic city generators.
package genetic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/genetic"
	"github.com/katalvlaran/evotsp/geo"
)

// squarePerimeter is the known optimum of the 10×10 axis-aligned square:
// four sides of length 10, including the wrap-around edge.
const squarePerimeter = 40.0

// squareCities returns the canonical 4-city square in perimeter order.
func squareCities() []geo.City {
	return []geo.City{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}
}

// mustRegistry builds a Registry or fails the test.
func mustRegistry(t *testing.T, cities []geo.City) *geo.Registry {
	t.Helper()
	reg, err := geo.NewRegistry(cities)
	require.NoError(t, err)

	return reg
}

// squareRegistry returns the canonical square Registry.
func squareRegistry(t *testing.T) *geo.Registry {
	t.Helper()

	return mustRegistry(t, squareCities())
}

// randomCities generates n cities uniformly in [0, 100)² from a fixed
// seed, for reproducible medium-sized instances.
func randomCities(n int, seed int64) []geo.City {
	var (
		r      = rand.New(rand.NewSource(seed))
		cities = make([]geo.City, n)
		i      int
	)
	for i = 0; i < n; i++ {
		cities[i] = geo.City{X: r.Float64() * 100, Y: r.Float64() * 100}
	}

	return cities
}

// tourGenes extracts the full gene sequence of a tour.
func tourGenes(t *testing.T, tour *genetic.Tour) []int {
	t.Helper()
	genes := make([]int, tour.Size())

	var (
		i   int
		err error
	)
	for i = 0; i < tour.Size(); i++ {
		genes[i], err = tour.Get(i)
		require.NoError(t, err)
	}

	return genes
}

// assertPermutation fails unless tour holds every registry index exactly
// once — the central invariant of the engine.
func assertPermutation(t *testing.T, tour *genetic.Tour) {
	t.Helper()

	var (
		n    = tour.Size()
		seen = make([]bool, n)
		i    int
		g    int
	)
	for i, g = range tourGenes(t, tour) {
		require.GreaterOrEqual(t, g, 0, "position %d: negative gene", i)
		require.Less(t, g, n, "position %d: gene %d out of range", i, g)
		require.False(t, seen[g], "gene %d appears twice", g)
		seen[g] = true
	}
}

// assertPopulationPermutations applies assertPermutation to every slot.
func assertPopulationPermutations(t *testing.T, pop *genetic.Population) {
	t.Helper()

	var i int
	for i = 0; i < pop.Size(); i++ {
		tour, err := pop.Get(i)
		require.NoError(t, err)
		assertPermutation(t, tour)
	}
}

// mustLength returns the tour length or fails.
func mustLength(t *testing.T, tour *genetic.Tour) float64 {
	t.Helper()
	l, err := tour.Length()
	require.NoError(t, err)

	return l
}
