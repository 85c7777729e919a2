package geo

import (
	"fmt"
	"math"
)

// City is an immutable 2D point. It is a plain value type: copy freely,
// compare by position within a Registry, never mutate in place.
type City struct {
	X float64
	Y float64
}

// String renders the city as "x, y" for result listings and debugging.
func (c City) String() string {
	return fmt.Sprintf("%g, %g", c.X, c.Y)
}

// Distance returns the Euclidean distance between two cities.
//
// Properties:
//   - Pure: no side effects, no allocation.
//   - Symmetric: Distance(a, b) == Distance(b, a).
//   - Triangle inequality holds by construction (derived from coordinates).
//
// math.Hypot is used for a numerically stable sqrt(dx²+dy²).
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
