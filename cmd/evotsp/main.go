// Command evotsp approximates a Euclidean TSP instance with the genetic
// engine: load city coordinates, seed a random mate pool, evolve it for
// the configured number of generations, and print the best tour found.
//
// Usage:
//
//	evotsp <config.yaml> [cities.txt]
//
// The optional second argument overrides the input path from the config
// file. Result output (initial best length, final best length, visiting
// order) goes to stdout; progress and diagnostics go to structured
// logging on stderr, so the two never interleave.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/evotsp/config"
	"github.com/katalvlaran/evotsp/genetic"
	"github.com/katalvlaran/evotsp/geo"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <config.yaml> [cities.txt]\n", os.Args[0])
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "evotsp: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	if err = run(log, os.Args[1:]); err != nil {
		// Fatal-only failure model: any error aborts the run.
		log.Errorw("run aborted", "err", err)
		os.Exit(1)
	}
}

// run wires the whole pipeline: config → registry → seed → evolve → print.
func run(log *zap.SugaredLogger, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	if len(args) == 2 { // optional input override
		cfg.Input = args[1]
	}
	if cfg.Input == "" {
		return fmt.Errorf("%w: input path missing (config or argument)", config.ErrInvalid)
	}

	reg, err := geo.LoadRegistry(cfg.Input)
	if err != nil {
		return err
	}
	log.Infow("instance loaded", "input", cfg.Input, "cities", reg.Size())

	ev, err := genetic.NewEvolver(reg, cfg.Options())
	if err != nil {
		return err
	}

	pop, err := ev.SeedPopulation(cfg.PoolSize)
	if err != nil {
		return err
	}

	initial, err := genetic.Summarize(0, pop)
	if err != nil {
		return err
	}
	log.Infow("pool seeded",
		"pool_size", cfg.PoolSize,
		"best", initial.Best,
		"mean", initial.Mean,
		"stddev", initial.StdDev,
	)
	fmt.Printf("Initial best tour length: %g\n", initial.Best)

	final, err := ev.Run(pop, cfg.Generations, func(gen int, p *genetic.Population) {
		snap, serr := genetic.Summarize(gen, p)
		if serr != nil {
			log.Warnw("snapshot failed", "generation", gen, "err", serr)

			return
		}
		log.Infow("generation",
			"generation", snap.Generation,
			"best", snap.Best,
			"mean", snap.Mean,
			"median", snap.Median,
			"stddev", snap.StdDev,
		)
	})
	if err != nil {
		return err
	}

	best, err := final.Best()
	if err != nil {
		return err
	}
	length, err := best.Length()
	if err != nil {
		return err
	}
	cities, err := best.Cities()
	if err != nil {
		return err
	}

	fmt.Printf("Final best tour length: %g\n", length)
	fmt.Println("Best visiting order (return to the first city is implicit):")
	for _, c := range cities {
		fmt.Println(c)
	}

	return nil
}
