// Package config loads the YAML run configuration for the evotsp driver.
//
// The core algorithm takes its parameters as a plain genetic.Options
// struct; this package only exists at the program boundary, mapping a
// small YAML file onto that struct plus the run-level knobs (input path,
// pool size, generation count).
//
// Example file:
//
//	input: cities.txt
//	pool_size: 50
//	generations: 50
//	mutation_rate: 0.015
//	tournament_size: 5
//	elitism: true
//	seed: 42
//	workers: 4
//
// Absent fields fall back to the defaults of Default(); a malformed file
// or an out-of-domain value is fatal.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evotsp/genetic"
)

// ErrInvalid is returned (wrapped with the offending field) when a
// configuration value is outside its documented domain.
var ErrInvalid = errors.New("config: invalid value")

// Default run-level parameters; the operator defaults come from
// genetic.DefaultOptions.
const (
	DefaultPoolSize    = 50
	DefaultGenerations = 50
)

// Config is the YAML shape of one run.
//
// Elitism is a *bool so that an absent field keeps the default (true)
// while an explicit "elitism: false" is still expressible.
type Config struct {
	Input          string  `yaml:"input"`
	PoolSize       int     `yaml:"pool_size"`
	Generations    int     `yaml:"generations"`
	MutationRate   float64 `yaml:"mutation_rate"`
	TournamentSize int     `yaml:"tournament_size"`
	Elitism        *bool   `yaml:"elitism"`
	Seed           int64   `yaml:"seed"`
	Workers        int     `yaml:"workers"`
}

// Default returns a Config with every field at its default.
func Default() Config {
	var elitism = true

	return Config{
		PoolSize:       DefaultPoolSize,
		Generations:    DefaultGenerations,
		MutationRate:   genetic.DefaultMutationRate,
		TournamentSize: genetic.DefaultTournamentSize,
		Elitism:        &elitism,
		Seed:           0,
		Workers:        genetic.DefaultWorkers,
	}
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path and delegates to Parse.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}

	return Parse(data)
}

// validate rejects values outside their documented domains. The input
// path is deliberately not required here: the driver may supply it as a
// command-line override.
func (c Config) validate() error {
	if c.PoolSize < 1 {
		return fmt.Errorf("%w: pool_size must be ≥ 1, got %d", ErrInvalid, c.PoolSize)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must be ≥ 0, got %d", ErrInvalid, c.Generations)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("%w: mutation_rate must be within [0, 1], got %g", ErrInvalid, c.MutationRate)
	}
	if c.TournamentSize < 1 {
		return fmt.Errorf("%w: tournament_size must be ≥ 1, got %d", ErrInvalid, c.TournamentSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalid, c.Workers)
	}

	return nil
}

// Options maps the Config onto the algorithm parameter struct.
func (c Config) Options() genetic.Options {
	var elitism = true
	if c.Elitism != nil {
		elitism = *c.Elitism
	}

	return genetic.Options{
		MutationRate:   c.MutationRate,
		TournamentSize: c.TournamentSize,
		Elitism:        elitism,
		Seed:           c.Seed,
		Workers:        c.Workers,
	}
}
