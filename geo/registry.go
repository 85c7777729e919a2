package geo

// Registry is the fixed, ordered collection of all cities of one problem
// instance. It is established once at load time and never mutated, which
// makes it safe to share read-only across any number of goroutines.
//
// Tours reference cities by their index in the Registry; the Registry is
// the single shared structure of a run.
type Registry struct {
	cities []City
}

// NewRegistry builds a Registry from the given cities.
//
// Contracts:
//   - len(cities) ≥ 1; zero cities yield ErrEmptyRegistry.
//   - The input slice is copied; later mutation of the caller's slice
//     cannot alter the Registry.
//
// Complexity: O(n) time, O(n) space.
func NewRegistry(cities []City) (*Registry, error) {
	if len(cities) == 0 {
		return nil, ErrEmptyRegistry
	}
	cp := make([]City, len(cities))
	copy(cp, cities)

	return &Registry{cities: cp}, nil
}

// Size returns the number of cities. Constant for the Registry's lifetime.
//
// Complexity: O(1).
func (r *Registry) Size() int {
	return len(r.cities)
}

// Get returns the city at index i.
//
// Errors: ErrIndexOutOfRange if i ∉ [0, Size()).
//
// Complexity: O(1).
func (r *Registry) Get(i int) (City, error) {
	if i < 0 || i >= len(r.cities) {
		return City{}, ErrIndexOutOfRange
	}

	return r.cities[i], nil
}

// DistanceBetween returns the Euclidean distance between the cities at
// indices i and j. Convenience wrapper used by tour length accumulation.
//
// Errors: ErrIndexOutOfRange if either index is out of bounds.
//
// Complexity: O(1).
func (r *Registry) DistanceBetween(i, j int) (float64, error) {
	var n = len(r.cities)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrIndexOutOfRange
	}

	return Distance(r.cities[i], r.cities[j]), nil
}
