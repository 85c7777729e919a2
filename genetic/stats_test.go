// Package genetic_test — Snapshot summaries over fixed pools with known
// length distributions.
package genetic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/genetic"
)

// TestSummarize_KnownDistribution builds a two-tour pool with exactly
// known lengths (perimeter 40 and crossing 20+20√2) and checks every
// summary field against hand-computed values.
func TestSummarize_KnownDistribution(t *testing.T) {
	reg := squareRegistry(t)
	pop, err := genetic.NewPopulation(reg, 2, false, nil)
	require.NoError(t, err)

	perimeter, err := genetic.NewTour(reg)
	require.NoError(t, err)
	crossing, err := genetic.NewTour(reg)
	require.NoError(t, err)
	require.NoError(t, crossing.Set(1, 2))
	require.NoError(t, crossing.Set(2, 1))

	require.NoError(t, pop.Set(0, perimeter))
	require.NoError(t, pop.Set(1, crossing))

	snap, err := genetic.Summarize(7, pop)
	require.NoError(t, err)

	var (
		long = 20 + 20*math.Sqrt2
		mean = (squarePerimeter + long) / 2
	)
	assert.Equal(t, 7, snap.Generation)
	assert.InDelta(t, squarePerimeter, snap.Best, 1e-9)
	assert.InDelta(t, mean, snap.Mean, 1e-9)
	assert.InDelta(t, mean, snap.Median, 1e-9) // two samples: median == mean
	// Population stddev of two values is half their absolute difference.
	assert.InDelta(t, (long-squarePerimeter)/2, snap.StdDev, 1e-9)
}

// TestSummarize_UniformPool: identical tours give zero spread.
func TestSummarize_UniformPool(t *testing.T) {
	reg := squareRegistry(t)
	pop, err := genetic.NewPopulation(reg, 4, false, nil)
	require.NoError(t, err)

	var i int
	for i = 0; i < 4; i++ {
		tour, terr := genetic.NewTour(reg)
		require.NoError(t, terr)
		require.NoError(t, pop.Set(i, tour))
	}

	snap, err := genetic.Summarize(0, pop)
	require.NoError(t, err)
	assert.Equal(t, squarePerimeter, snap.Best)
	assert.Equal(t, squarePerimeter, snap.Mean)
	assert.Equal(t, squarePerimeter, snap.Median)
	assert.InDelta(t, 0, snap.StdDev, 1e-12)
}

// TestSummarize_Errors: nil pools and unseeded slots are rejected.
func TestSummarize_Errors(t *testing.T) {
	_, err := genetic.Summarize(0, nil)
	assert.ErrorIs(t, err, genetic.ErrNilPopulation)

	pop, err := genetic.NewPopulation(squareRegistry(t), 2, false, nil)
	require.NoError(t, err)
	_, err = genetic.Summarize(0, pop)
	assert.ErrorIs(t, err, genetic.ErrEmptySlot)
}
