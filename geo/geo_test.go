// Package geo_test exercises the geometric primitives: the Euclidean
// metric, Registry construction/immutability, and bounds discipline.
package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/geo"
)

// TestDistance_BasicAndSymmetric verifies the metric on known triples and
// checks symmetry on an irregular pair.
func TestDistance_BasicAndSymmetric(t *testing.T) {
	a := geo.City{X: 0, Y: 0}
	b := geo.City{X: 3, Y: 4}

	assert.Equal(t, 5.0, geo.Distance(a, b)) // classic 3-4-5 triangle
	assert.Equal(t, geo.Distance(a, b), geo.Distance(b, a))
	assert.Zero(t, geo.Distance(a, a))

	c := geo.City{X: -1.5, Y: 2.25}
	d := geo.City{X: 4.5, Y: -3}
	assert.InDelta(t, math.Hypot(6, 5.25), geo.Distance(c, d), 1e-12)
}

// TestNewRegistry_RejectsEmpty verifies the empty-instance sentinel:
// zero cities have no defined cycle length and must not construct.
func TestNewRegistry_RejectsEmpty(t *testing.T) {
	_, err := geo.NewRegistry(nil)
	assert.ErrorIs(t, err, geo.ErrEmptyRegistry)

	_, err = geo.NewRegistry([]geo.City{})
	assert.ErrorIs(t, err, geo.ErrEmptyRegistry)
}

// TestRegistry_GetAndBounds verifies ordered access and the index sentinel.
func TestRegistry_GetAndBounds(t *testing.T) {
	cities := []geo.City{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	reg, err := geo.NewRegistry(cities)
	require.NoError(t, err)
	require.Equal(t, 3, reg.Size())

	var i int
	for i = 0; i < reg.Size(); i++ {
		got, gerr := reg.Get(i)
		require.NoError(t, gerr)
		assert.Equal(t, cities[i], got)
	}

	_, err = reg.Get(-1)
	assert.ErrorIs(t, err, geo.ErrIndexOutOfRange)
	_, err = reg.Get(3)
	assert.ErrorIs(t, err, geo.ErrIndexOutOfRange)
}

// TestRegistry_CopiesInput verifies that mutating the caller's slice after
// construction cannot alter the Registry (read-only after construction).
func TestRegistry_CopiesInput(t *testing.T) {
	cities := []geo.City{{X: 1, Y: 1}, {X: 2, Y: 2}}
	reg, err := geo.NewRegistry(cities)
	require.NoError(t, err)

	cities[0] = geo.City{X: 99, Y: 99}

	got, err := reg.Get(0)
	require.NoError(t, err)
	assert.Equal(t, geo.City{X: 1, Y: 1}, got)
}

// TestRegistry_DistanceBetween verifies the index-based metric wrapper,
// including its bounds checks.
func TestRegistry_DistanceBetween(t *testing.T) {
	reg, err := geo.NewRegistry([]geo.City{{X: 0, Y: 0}, {X: 0, Y: 10}})
	require.NoError(t, err)

	d, err := reg.DistanceBetween(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, d)

	_, err = reg.DistanceBetween(0, 2)
	assert.ErrorIs(t, err, geo.ErrIndexOutOfRange)
	_, err = reg.DistanceBetween(-1, 0)
	assert.ErrorIs(t, err, geo.ErrIndexOutOfRange)
}

// TestRegistry_CoincidentCitiesAreDistinct verifies that duplicate
// coordinates remain separate entries (identity is positional).
func TestRegistry_CoincidentCitiesAreDistinct(t *testing.T) {
	reg, err := geo.NewRegistry([]geo.City{{X: 7, Y: 7}, {X: 7, Y: 7}})
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Size())

	d, err := reg.DistanceBetween(0, 1)
	require.NoError(t, err)
	assert.Zero(t, d)
}
