package genetic

import "errors"

// Sentinel errors returned by the genetic package.
var (
	// ErrNilRegistry indicates that a nil *geo.Registry was supplied.
	ErrNilRegistry = errors.New("genetic: registry is nil")

	// ErrNilPopulation indicates that a nil *Population was supplied.
	ErrNilPopulation = errors.New("genetic: population is nil")

	// ErrIndexOutOfRange indicates an out-of-bounds access into a Tour's
	// gene sequence or a Population's slots. It signals a broken invariant
	// (e.g. a corrupted crossover result) and is fatal, never retried.
	ErrIndexOutOfRange = errors.New("genetic: index out of range")

	// ErrEmptySlot indicates that an unseeded Population slot (or an
	// unfilled gene of a partial Tour) was read where a complete value was
	// required.
	ErrEmptySlot = errors.New("genetic: empty slot")

	// ErrZeroLength indicates a degenerate tour of total length zero
	// (all cities coincident). Its fitness 1/length is undefined and is
	// reported as an error rather than silently divided.
	ErrZeroLength = errors.New("genetic: zero-length tour has undefined fitness")

	// ErrBadMutationRate indicates a mutation rate outside [0, 1].
	ErrBadMutationRate = errors.New("genetic: mutation rate must be within [0, 1]")

	// ErrBadTournamentSize indicates a tournament size below 1.
	ErrBadTournamentSize = errors.New("genetic: tournament size must be ≥ 1")

	// ErrBadPoolSize indicates a population size below 1.
	ErrBadPoolSize = errors.New("genetic: pool size must be ≥ 1")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("genetic: workers must be ≥ 1")
)

// Default algorithm parameters. They match the classical small-instance
// setup: light per-gene mutation, a 5-way tournament and elitism on.
const (
	// DefaultMutationRate is the per-gene swap probability.
	DefaultMutationRate = 0.015

	// DefaultTournamentSize is the number of tours drawn (with replacement)
	// per tournament. Size 1 degenerates to uniform random choice.
	DefaultTournamentSize = 5

	// DefaultWorkers keeps generation production single-threaded.
	DefaultWorkers = 1
)

// Options configures an Evolver. Fixed at construction, never mutated
// mid-run.
//
//	MutationRate   – per-gene swap probability in [0, 1].
//	TournamentSize – tours sampled per parent selection; must be ≥ 1.
//	Elitism        – carry the best tour of each generation unchanged into
//	                 slot 0 of the next one (copied by value).
//	Seed           – RNG seed; 0 selects a fixed default seed so that the
//	                 zero value of Options is still fully deterministic.
//	Workers        – number of goroutines for seeding and per-slot offspring
//	                 construction; 1 means sequential. The result is
//	                 identical for any value (per-slot derived RNG streams).
type Options struct {
	MutationRate   float64
	TournamentSize int
	Elitism        bool
	Seed           int64
	Workers        int
}

// DefaultOptions returns the canonical parameter set: mutation rate 0.015,
// tournament size 5, elitism on, deterministic default seed, sequential.
func DefaultOptions() Options {
	return Options{
		MutationRate:   DefaultMutationRate,
		TournamentSize: DefaultTournamentSize,
		Elitism:        true,
		Seed:           0,
		Workers:        DefaultWorkers,
	}
}

// validateOptions rejects parameter values outside their documented domain.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrBadMutationRate
	}
	if opts.TournamentSize < 1 {
		return ErrBadTournamentSize
	}
	if opts.Workers < 1 {
		return ErrBadWorkers
	}

	return nil
}
