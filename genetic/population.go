// Package genetic — the Population mate pool.
//
// A Population is a fixed-size ordered collection of Tours. The size is
// chosen at construction and constant across generations; a fresh
// Population is produced each generation and the previous one discarded.
package genetic

import (
	"math/rand"

	"github.com/katalvlaran/evotsp/geo"
)

// Population is a fixed-size mate pool of candidate tours.
//
// Ownership: a Population exclusively owns its Tours; once production of
// the next generation begins, the current Population is read-only.
type Population struct {
	reg   *geo.Registry
	tours []*Tour
}

// NewPopulation allocates a Population of the given size.
//
// When seed is true every slot is filled with a natural-order Tour that
// is then randomized in place using rng (nil rng selects the default
// deterministic stream). When seed is false the slots are left unset for
// the caller to fill, e.g. during generation construction.
//
// Errors: ErrNilRegistry, ErrBadPoolSize.
//
// Complexity: O(size·n) when seeding, O(size) otherwise.
func NewPopulation(reg *geo.Registry, size int, seed bool, rng *rand.Rand) (*Population, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if size < 1 {
		return nil, ErrBadPoolSize
	}

	p := &Population{reg: reg, tours: make([]*Tour, size)}
	if !seed {
		return p, nil
	}

	var (
		i   int
		t   *Tour
		err error
	)
	for i = 0; i < size; i++ {
		t, err = NewTour(reg)
		if err != nil {
			return nil, err
		}
		t.Randomize(rng)
		p.tours[i] = t
	}

	return p, nil
}

// Size returns the number of slots (filled or not).
//
// Complexity: O(1).
func (p *Population) Size() int {
	return len(p.tours)
}

// Get returns the Tour in slot i.
//
// Errors: ErrIndexOutOfRange for a bad slot; ErrEmptySlot for an unset one.
//
// Complexity: O(1).
func (p *Population) Get(i int) (*Tour, error) {
	if i < 0 || i >= len(p.tours) {
		return nil, ErrIndexOutOfRange
	}
	if p.tours[i] == nil {
		return nil, ErrEmptySlot
	}

	return p.tours[i], nil
}

// Set stores t in slot i.
//
// Errors: ErrIndexOutOfRange for a bad slot; ErrEmptySlot for a nil tour.
//
// Complexity: O(1).
func (p *Population) Set(i int, t *Tour) error {
	if i < 0 || i >= len(p.tours) {
		return ErrIndexOutOfRange
	}
	if t == nil {
		return ErrEmptySlot
	}
	p.tours[i] = t

	return nil
}

// warmCaches forces every tour's length/fitness cache from the calling
// goroutine. Generation production fans parent reads out over several
// workers, and a lazy recompute is a cache write; warming first keeps
// the parent pool genuinely read-only during the fan-out.
//
// Errors: ErrEmptySlot for an unset slot; length errors propagate
// unchanged.
//
// Complexity: O(size·n) worst case, O(size) when already warm.
func (p *Population) warmCaches() error {
	var (
		i   int
		err error
	)
	for i = 0; i < len(p.tours); i++ {
		if p.tours[i] == nil {
			return ErrEmptySlot
		}
		if _, err = p.tours[i].Length(); err != nil {
			return err
		}
	}

	return nil
}

// Best returns the Tour with the maximum fitness, by linear scan with
// ties broken in favour of the lowest index. It is computed fresh on
// every call — member Tours recompute their cached fitness independently,
// so a Population-level cache could go stale.
//
// Errors: ErrEmptySlot if any slot is unset; fitness errors (such as
// ErrZeroLength on a degenerate instance) propagate unchanged.
//
// Complexity: O(size·n) worst case (cold caches), O(size) when warm.
func (p *Population) Best() (*Tour, error) {
	var (
		best    *Tour
		bestFit float64
		i       int
		t       *Tour
		fit     float64
		err     error
	)
	for i = 0; i < len(p.tours); i++ {
		t = p.tours[i]
		if t == nil {
			return nil, ErrEmptySlot
		}
		fit, err = t.Fitness()
		if err != nil {
			return nil, err
		}
		// Strictly-greater keeps the first-encountered tour on ties.
		if best == nil || fit > bestFit {
			best = t
			bestFit = fit
		}
	}

	return best, nil
}
