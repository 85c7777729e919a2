// Package genetic — the Evolver operator set.
//
// The Evolver holds the fixed algorithm parameters and the operators that
// transform one Population into the next generation:
//
//	selection  — k-way tournament, sampled with replacement.
//	crossover  — order-preserving with a copied parent1 segment; the
//	             three asymmetric cut-point branches (p<q / p>q / p==q)
//	             are implemented exactly, since rewriting them "more
//	             symmetrically" would change the operator's selection bias.
//	mutation   — independent per-gene swap at MutationRate.
//	elitism    — the previous best survives unchanged in slot 0, copied
//	             by value.
package genetic

import (
	"math/rand"

	"github.com/katalvlaran/evotsp/geo"
)

// Evolver applies the genetic operators. Parameters are fixed at
// construction; the embedded base RNG is the only mutable state and is
// consumed strictly sequentially (per-slot substreams are derived from it
// during setup of each generation).
type Evolver struct {
	reg  *geo.Registry
	opts Options
	rng  *rand.Rand
}

// NewEvolver validates opts and builds an Evolver over reg.
//
// Errors: ErrNilRegistry, ErrBadMutationRate, ErrBadTournamentSize,
// ErrBadWorkers.
//
// Complexity: O(1).
func NewEvolver(reg *geo.Registry, opts Options) (*Evolver, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Evolver{reg: reg, opts: opts, rng: rngFromSeed(opts.Seed)}, nil
}

// Options returns a copy of the evolver's parameters.
func (e *Evolver) Options() Options {
	return e.opts
}

// SeedPopulation builds the initial mate pool: size random permutations
// of the registry. Each slot randomizes with its own derived RNG stream,
// so the result is identical for any Workers value.
//
// Errors: ErrBadPoolSize.
//
// Complexity: O(size·n) work, spread across Workers goroutines.
func (e *Evolver) SeedPopulation(size int) (*Population, error) {
	pop, err := NewPopulation(e.reg, size, false, nil)
	if err != nil {
		return nil, err
	}

	rngs := slotRNGs(e.rng, 0, size)
	err = e.forEachSlot(0, size, func(slot int) error {
		t, terr := NewTour(e.reg)
		if terr != nil {
			return terr
		}
		t.Randomize(rngs[slot])

		return pop.Set(slot, t)
	})
	if err != nil {
		return nil, err
	}

	return pop, nil
}

// NextGeneration derives a new Population from pop:
//
//  1. Allocate an unseeded Population of the same size.
//  2. With Elitism, copy pop.Best() by value into slot 0; offspring
//     production starts at slot 1 (otherwise at slot 0).
//  3. For each remaining slot: select two parents independently by
//     tournament, cross them into one child, and mutate the child in
//     place. Every slot draws all of its randomness from its own derived
//     stream, so the slots are mutually independent and may run on any
//     number of workers.
//
// pop's tours are never structurally modified; their lazy caches are
// warmed by a sequential pass before any worker starts, so the fan-out
// sees strictly read-only parents and needs no locking. The new
// Population is written to separate storage.
//
// Errors: ErrNilPopulation; any slot error aborts the whole generation
// (fatal-only, no partial-result recovery).
//
// Complexity: O(size·n²) worst case (crossover containment scans),
// spread across Workers goroutines.
func (e *Evolver) NextGeneration(pop *Population) (*Population, error) {
	if pop == nil {
		return nil, ErrNilPopulation
	}

	var size = pop.Size()
	next, err := NewPopulation(e.reg, size, false, nil)
	if err != nil {
		return nil, err
	}

	// Elitism: the recorded best is copied, not referenced, so later
	// mutation of the new generation cannot alter it retroactively.
	var offset = 0
	if e.opts.Elitism {
		best, berr := pop.Best()
		if berr != nil {
			return nil, berr
		}
		if err = next.Set(0, best.Clone()); err != nil {
			return nil, err
		}
		offset = 1
	}
	if offset >= size {
		return next, nil // a pool of one elite slot is already complete
	}

	// Workers share the parent pool read-only, and a cold lazy cache
	// would turn the first Fitness read into a concurrent write. Warm
	// every parent sequentially before fan-out.
	if e.opts.Workers > 1 {
		if err = pop.warmCaches(); err != nil {
			return nil, err
		}
	}

	rngs := slotRNGs(e.rng, offset, size)
	err = e.forEachSlot(offset, size, func(slot int) error {
		var rng = rngs[slot]

		p1, serr := e.tournament(pop, rng)
		if serr != nil {
			return serr
		}
		p2, serr := e.tournament(pop, rng)
		if serr != nil {
			return serr
		}

		child, cerr := e.crossover(p1, p2, rng)
		if cerr != nil {
			return cerr
		}
		if merr := e.mutate(child, rng); merr != nil {
			return merr
		}

		return next.Set(slot, child)
	})
	if err != nil {
		return nil, err
	}

	return next, nil
}

// Run evolves pop for the given number of generations and returns the
// final Population. onGeneration (may be nil) observes each newly
// produced generation, numbered from 1; useful for progress reporting.
//
// Cancellation is the caller's loop choice: a bounded generation count
// with no I/O waits needs no further machinery.
//
// Complexity: O(generations · size · n²) worst case.
func (e *Evolver) Run(pop *Population, generations int, onGeneration func(gen int, pop *Population)) (*Population, error) {
	if pop == nil {
		return nil, ErrNilPopulation
	}

	var (
		cur = pop
		gen int
		err error
	)
	for gen = 1; gen <= generations; gen++ {
		cur, err = e.NextGeneration(cur)
		if err != nil {
			return nil, err
		}
		if onGeneration != nil {
			onGeneration(gen, cur)
		}
	}

	return cur, nil
}

// tournament draws TournamentSize tours uniformly at random with
// replacement from pop and returns the fittest, ties broken in favour of
// the first-drawn. TournamentSize 1 degenerates to uniform random choice;
// selection pressure grows with the size.
//
// Complexity: O(TournamentSize·n) worst case (cold fitness caches).
func (e *Evolver) tournament(pop *Population, rng *rand.Rand) (*Tour, error) {
	var (
		best    *Tour
		bestFit float64
		round   int
		t       *Tour
		fit     float64
		err     error
	)
	for round = 0; round < e.opts.TournamentSize; round++ {
		t, err = pop.Get(rng.Intn(pop.Size()))
		if err != nil {
			return nil, err
		}
		fit, err = t.Fitness()
		if err != nil {
			return nil, err
		}
		if best == nil || fit > bestFit {
			best = t
			bestFit = fit
		}
	}

	return best, nil
}

// crossover draws the two cut points and delegates to crossoverAt.
// Both points are drawn the same way and may coincide.
//
// Complexity: O(n²) worst case.
func (e *Evolver) crossover(p1, p2 *Tour, rng *rand.Rand) (*Tour, error) {
	var (
		n = p1.Size()
		p = rng.Intn(n)
		q = rng.Intn(n)
	)

	return crossoverAt(p1, p2, p, q)
}

// crossoverAt builds one child from two parents and fixed cut points.
//
// Step 1 — copy from parent1, with three asymmetric branches:
//   - p < q:  copy positions i with p < i < q (strictly inside).
//   - p > q:  copy every position NOT strictly between q and p, i.e. the
//     wrapped-around complement region.
//   - p == q: copy nothing; the child is filled entirely in step 2.
//
// Step 2 — walk parent2's genes in its own order; place each gene not
// already present in the child (linear Contains scan) into the first
// empty slot, in index order. The child therefore ends up a full
// permutation: parent1's copied genes keep their original positions,
// the rest follow parent2's relative order.
//
// Errors: ErrIndexOutOfRange if the parents' sizes or the cut points
// disagree with each other.
//
// Complexity: O(n²) worst case (one containment scan per remaining gene).
func crossoverAt(p1, p2 *Tour, p, q int) (*Tour, error) {
	var n = p1.Size()
	if p2.Size() != n {
		return nil, ErrIndexOutOfRange
	}
	if p < 0 || p >= n || q < 0 || q >= n {
		return nil, ErrIndexOutOfRange
	}

	child := newPartialTour(p1.reg)

	// Step 1: copy the selected region from parent1.
	var (
		i    int
		gene int
		err  error
	)
	for i = 0; i < n; i++ {
		if !inCopiedRegion(p, q, i) {
			continue
		}
		gene, err = p1.Get(i)
		if err != nil {
			return nil, err
		}
		if err = child.Set(i, gene); err != nil {
			return nil, err
		}
	}

	// Step 2: fill the gaps in parent2's relative order.
	var z int
	for i = 0; i < n; i++ {
		gene, err = p2.Get(i)
		if err != nil {
			return nil, err
		}
		if child.Contains(gene) {
			continue
		}
		for z = 0; z < n; z++ {
			if child.genes[z] == emptyGene {
				if err = child.Set(z, gene); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	return child, nil
}

// inCopiedRegion decides whether position i is copied from parent1 for
// cut points p and q. The three branches are deliberately asymmetric:
//
//	p < q:  strictly inside the open interval (p, q).
//	p > q:  everything NOT strictly between q and p (wrapped complement).
//	p == q: nothing.
//
// Complexity: O(1).
func inCopiedRegion(p, q, i int) bool {
	switch {
	case p < q:
		return i > p && i < q
	case p > q:
		return !(i < p && i > q)
	default:
		return false
	}
}

// mutate applies swap mutation to t in place: each position i is
// evaluated independently, and with probability MutationRate a partner
// position j is drawn uniformly from [0, n) (j may equal i, a no-op
// swap) and the two genes exchanged. A single pass may apply several
// swaps; earlier swaps are not excluded from later ones.
//
// Complexity: O(n).
func (e *Evolver) mutate(t *Tour, rng *rand.Rand) error {
	var (
		n = t.Size()
		i int
		j int
	)
	for i = 0; i < n; i++ {
		if rng.Float64() >= e.opts.MutationRate {
			continue
		}
		j = rng.Intn(n)
		t.genes[i], t.genes[j] = t.genes[j], t.genes[i]
		t.invalidate()
	}

	return nil
}
