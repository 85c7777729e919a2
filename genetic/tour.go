// Package genetic — the Tour candidate type.
//
// A Tour is one chromosome: an ordered sequence of registry indices
// (genes), each city appearing exactly once. Total length and fitness are
// computed lazily and cached; any gene write invalidates both caches
// unconditionally. The cache state is an explicit dirty flag rather than
// a "zero means unset" convention, so a genuinely zero-length tour (all
// cities coincident) is distinguishable from a not-yet-computed one.
package genetic

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/evotsp/geo"
)

// emptyGene marks an unfilled position of a crossover-in-progress child.
// It never appears in a Tour visible outside this package.
const emptyGene = -1

// Tour is a candidate cycle over a geo.Registry.
//
// Invariant: outside of crossover construction, genes is a permutation of
// [0, reg.Size()) — no duplicates, no omissions, no empty slots.
type Tour struct {
	reg   *geo.Registry
	genes []int

	// Lazily cached derived values. cached guards both: they are always
	// invalidated together and recomputed together on the next read.
	length  float64
	fitness float64
	cached  bool
}

// NewTour creates a Tour whose gene sequence is the registry's natural
// order 0..n−1, with unset caches. It does not shuffle; call Randomize
// to obtain an unbiased random permutation.
//
// Errors: ErrNilRegistry.
//
// Complexity: O(n) time, O(n) space.
func NewTour(reg *geo.Registry) (*Tour, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	var (
		n     = reg.Size()
		genes = make([]int, n)
		i     int
	)
	for i = 0; i < n; i++ {
		genes[i] = i
	}

	return &Tour{reg: reg, genes: genes}, nil
}

// newPartialTour creates a Tour with every gene empty. Only crossover
// uses it; the child must be completely filled before it escapes.
//
// Complexity: O(n).
func newPartialTour(reg *geo.Registry) *Tour {
	var (
		n     = reg.Size()
		genes = make([]int, n)
		i     int
	)
	for i = 0; i < n; i++ {
		genes[i] = emptyGene
	}

	return &Tour{reg: reg, genes: genes}
}

// Size returns the number of genes (== registry size).
//
// Complexity: O(1).
func (t *Tour) Size() int {
	return len(t.genes)
}

// Get returns the gene (registry index) at position pos.
//
// Errors: ErrIndexOutOfRange if pos ∉ [0, Size()).
//
// Complexity: O(1).
func (t *Tour) Get(pos int) (int, error) {
	if pos < 0 || pos >= len(t.genes) {
		return 0, ErrIndexOutOfRange
	}

	return t.genes[pos], nil
}

// City resolves the gene at position pos to its geo.City.
//
// Errors: ErrIndexOutOfRange for a bad position; ErrEmptySlot if the
// position is unfilled (partial child).
//
// Complexity: O(1).
func (t *Tour) City(pos int) (geo.City, error) {
	gene, err := t.Get(pos)
	if err != nil {
		return geo.City{}, err
	}
	if gene == emptyGene {
		return geo.City{}, ErrEmptySlot
	}

	return t.reg.Get(gene)
}

// Set writes gene at position pos and invalidates both caches
// unconditionally — even when the written value equals the previous one.
//
// Errors: ErrIndexOutOfRange if pos or gene is outside [0, Size()).
//
// Complexity: O(1).
func (t *Tour) Set(pos, gene int) error {
	if pos < 0 || pos >= len(t.genes) {
		return ErrIndexOutOfRange
	}
	if gene < 0 || gene >= len(t.genes) {
		return ErrIndexOutOfRange
	}
	t.genes[pos] = gene
	t.invalidate()

	return nil
}

// invalidate resets both caches to the recompute-pending state.
func (t *Tour) invalidate() {
	t.cached = false
	t.length = 0
	t.fitness = 0
}

// Randomize performs an unbiased in-place Fisher–Yates permutation of the
// gene sequence using rng, and resets the caches. Every city appears
// exactly once before and after. A nil rng falls back to the default
// deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func (t *Tour) Randomize(rng *rand.Rand) {
	var r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var (
		i int
		j int
	)
	for i = len(t.genes) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		t.genes[i], t.genes[j] = t.genes[j], t.genes[i]
	}
	t.invalidate()
}

// Length returns the total Euclidean length of the closed cycle:
// Σ distance(gene[i], gene[i+1 mod n]) for i ∈ [0, n), including the
// wrap-around edge from the last city back to the first. The value is
// cached until the next gene write.
//
// Errors: ErrEmptySlot if any gene is unfilled; ErrIndexOutOfRange if a
// gene escaped the registry bounds (broken invariant).
//
// Complexity: O(n) on recompute, O(1) on a cache hit.
func (t *Tour) Length() (float64, error) {
	if t.cached {
		return t.length, nil
	}
	if err := t.recompute(); err != nil {
		return 0, err
	}

	return t.length, nil
}

// Fitness returns 1/Length(), cached alongside the length.
//
// Errors: those of Length, plus ErrZeroLength for a degenerate cycle of
// total length zero (fitness undefined, never silently divided).
//
// Complexity: O(n) on recompute, O(1) on a cache hit.
func (t *Tour) Fitness() (float64, error) {
	if t.cached {
		if t.length == 0 {
			return 0, ErrZeroLength
		}

		return t.fitness, nil
	}
	if err := t.recompute(); err != nil {
		return 0, err
	}
	if t.length == 0 {
		return 0, ErrZeroLength
	}

	return t.fitness, nil
}

// recompute fills both caches from the current gene sequence.
// A zero total length is cached as a valid length; only Fitness treats it
// as an error condition.
//
// Complexity: O(n).
func (t *Tour) recompute() error {
	var (
		n   = len(t.genes)
		sum float64
		i   int
		u   int
		v   int
		d   float64
		err error
	)
	for i = 0; i < n; i++ {
		u = t.genes[i]
		v = t.genes[(i+1)%n] // cyclic closure term included
		if u == emptyGene || v == emptyGene {
			return ErrEmptySlot
		}
		d, err = t.reg.DistanceBetween(u, v)
		if err != nil {
			// A gene outside the registry is a broken invariant.
			return ErrIndexOutOfRange
		}
		sum += d
	}

	t.length = sum
	if sum != 0 {
		t.fitness = 1 / sum
	} else {
		t.fitness = 0 // undefined; Fitness surfaces ErrZeroLength
	}
	t.cached = true

	return nil
}

// Contains reports whether gene appears anywhere in the sequence.
// A linear scan by design: crossover relies on it to maintain the
// permutation invariant while the child is partially filled.
//
// Complexity: O(n).
func (t *Tour) Contains(gene int) bool {
	var i int
	for i = 0; i < len(t.genes); i++ {
		if t.genes[i] == gene {
			return true
		}
	}

	return false
}

// Clone returns an independent deep copy of the tour (genes and caches).
// Used by elitism so that later mutation of the new generation cannot
// retroactively alter the recorded best of the old one.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) Clone() *Tour {
	genes := make([]int, len(t.genes))
	copy(genes, t.genes)

	return &Tour{
		reg:     t.reg,
		genes:   genes,
		length:  t.length,
		fitness: t.fitness,
		cached:  t.cached,
	}
}

// Cities returns the visiting order as city coordinates. The closing
// return edge to the first city is implicit (accounted for by Length,
// not repeated in the listing).
//
// Errors: ErrEmptySlot for a partial tour.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) Cities() ([]geo.City, error) {
	out := make([]geo.City, len(t.genes))

	var (
		i   int
		err error
	)
	for i = 0; i < len(t.genes); i++ {
		out[i], err = t.City(i)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// String renders the visiting order as "|x, y|x, y|…|", matching the
// classical route listing. Unfilled genes render as "|·|".
//
// Complexity: O(n).
func (t *Tour) String() string {
	var (
		sb strings.Builder
		i  int
		c  geo.City
	)
	sb.WriteString("|")
	for i = 0; i < len(t.genes); i++ {
		if t.genes[i] == emptyGene {
			sb.WriteString("·|")
			continue
		}
		c, _ = t.reg.Get(t.genes[i])
		sb.WriteString(c.String())
		sb.WriteString("|")
	}

	return sb.String()
}
