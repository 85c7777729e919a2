// Package genetic implements a genetic algorithm for the Euclidean TSP.
//
// The engine evolves a fixed-size Population of Tours — permutations over
// a geo.Registry — through successive generations of tournament
// selection, order-preserving crossover, per-gene swap mutation and
// optional elitism, until a caller-chosen generation count is reached.
//
// Components, leaf-first:
//
//   - Tour       — one candidate cycle: a permutation of registry indices
//     with lazily cached length and fitness (fitness = 1/length).
//   - Population — the mate pool: a fixed-size ordered collection of Tours.
//   - Evolver    — the stateless-policy operator set (selection, crossover,
//     mutation, elitism) plus the seeded RNG that drives it.
//
// Design principles (shared across the repository):
//
//   - Deterministic: all randomness flows from an injected seed; every
//     population slot draws from its own derived substream, so results
//     are identical for any worker count.
//   - Strict sentinels: only errors from types.go; no logging, no panics
//     on user input.
//   - Permutation invariant: at every observable point each Tour holds
//     every registry index exactly once (a crossover-in-progress child is
//     the only partially filled state, and it never escapes).
//   - Pure in-memory computation: no I/O in the hot loop, no external
//     resources, fatal-only failure with no partial-result recovery.
//
// Typical use:
//
//	reg, _ := geo.NewRegistry(cities)
//	ev, _ := genetic.NewEvolver(reg, genetic.DefaultOptions())
//	pop, _ := ev.SeedPopulation(50)
//	pop, _ = ev.Run(pop, 50, nil)
//	best, _ := pop.Best()
package genetic
