// Package genetic_test — benchmarks for the hot operators: tour length
// recomputation, one full generation (sequential and parallel), and the
// seeding path.
package genetic_test

import (
	"testing"

	"github.com/katalvlaran/evotsp/genetic"
	"github.com/katalvlaran/evotsp/geo"
)

// Shared benchmark shape: a mid-sized instance that makes the O(n²)
// crossover cost visible without dominating wall time.
const (
	benchCities = 100
	benchPool   = 50
)

// BenchmarkTourLength measures a cold length recomputation per iteration
// (the cache is invalidated by a same-value Set).
func BenchmarkTourLength(b *testing.B) {
	reg := mustRegistryB(b, benchCities)
	tour, err := genetic.NewTour(reg)
	if err != nil {
		b.Fatalf("NewTour: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tour.Set(0, 0) // invalidate; value unchanged by design
		if _, err = tour.Length(); err != nil {
			b.Fatalf("Length: %v", err)
		}
	}
}

// BenchmarkNextGeneration measures one sequential generation.
func BenchmarkNextGeneration(b *testing.B) {
	benchGeneration(b, 1)
}

// BenchmarkNextGeneration_Workers4 measures the same work fanned out to
// four workers; the result is identical by construction.
func BenchmarkNextGeneration_Workers4(b *testing.B) {
	benchGeneration(b, 4)
}

func benchGeneration(b *testing.B, workers int) {
	b.Helper()
	reg := mustRegistryB(b, benchCities)

	opts := genetic.DefaultOptions()
	opts.Workers = workers
	ev, err := genetic.NewEvolver(reg, opts)
	if err != nil {
		b.Fatalf("NewEvolver: %v", err)
	}
	pop, err := ev.SeedPopulation(benchPool)
	if err != nil {
		b.Fatalf("SeedPopulation: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pop, err = ev.NextGeneration(pop)
		if err != nil {
			b.Fatalf("NextGeneration: %v", err)
		}
	}
}

// BenchmarkSeedPopulation measures initial pool construction.
func BenchmarkSeedPopulation(b *testing.B) {
	reg := mustRegistryB(b, benchCities)
	ev, err := genetic.NewEvolver(reg, genetic.DefaultOptions())
	if err != nil {
		b.Fatalf("NewEvolver: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = ev.SeedPopulation(benchPool); err != nil {
			b.Fatalf("SeedPopulation: %v", err)
		}
	}
}

// mustRegistryB builds a deterministic benchmark registry.
func mustRegistryB(b *testing.B, n int) *geo.Registry {
	b.Helper()
	reg, err := geo.NewRegistry(randomCities(n, 1))
	if err != nil {
		b.Fatalf("NewRegistry: %v", err)
	}

	return reg
}
