// Package evotsp approximates the Euclidean Travelling Salesman Problem
// with a genetic algorithm — from 2D city primitives to a full
// selection → crossover → mutation → elitism evolution engine.
//
// 🚀 What is evotsp?
//
//	A small, deterministic, library-first GA engine that brings together:
//		• Geometry primitives: immutable 2D cities & a read-only registry
//		• Tours: permutations over the registry with lazily cached length/fitness
//		• Populations: fixed-size mate pools with a fresh best-of scan
//		• Evolution: tournament selection, ordered crossover, swap mutation, elitism
//		• Statistics: per-generation best/mean/median/stddev snapshots
//
// ✨ Why choose evotsp?
//
//   - Deterministic – seeded RNG with derived per-slot substreams; same seed,
//     same tour, on every platform and for any worker count
//   - Rock-solid guarantees – strict sentinel errors, permutation invariants
//     enforced at every observable point
//   - Library-first – the core does no I/O and no logging; the cmd/evotsp
//     driver handles files, config and progress reporting
//   - Parallel when asked – per-slot offspring construction scales across a
//     bounded worker pool without changing results
//
// Everything is organized under focused packages:
//
//	geo/        — City, Euclidean distance, Registry & coordinate parsing
//	genetic/    — Tour, Population, Evolver, options, RNG & statistics
//	config/     — YAML run configuration for the driver
//	cmd/evotsp/ — the runnable program (load → seed → evolve → print)
//
// Quick ASCII example:
//
//	    (0,10)───(10,10)
//	      │         │
//	    (0,0)────(10,0)
//
//	the optimal tour of a 10×10 square is its perimeter, length 40.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/evotsp
package evotsp
