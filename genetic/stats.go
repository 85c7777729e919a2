// Package genetic — per-generation population statistics.
//
// A Snapshot condenses one Population into the numbers a progress log
// wants: the best tour length plus mean/median/standard deviation of all
// lengths. Snapshots are pure reads; they never alter evolution state.
package genetic

import "github.com/montanaflynn/stats"

// Snapshot summarizes one Population at one generation.
type Snapshot struct {
	// Generation is the caller-supplied generation number (0 = initial pool).
	Generation int

	// Best is the length of the fittest tour (lowest total distance).
	Best float64

	// Mean, Median and StdDev summarize the length distribution of the
	// whole pool; a shrinking spread signals convergence.
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes a Snapshot of pop, labeled with gen.
//
// Errors: ErrNilPopulation; ErrEmptySlot for unseeded slots; tour length
// errors propagate unchanged.
//
// Complexity: O(size·n) worst case (cold caches) plus O(size log size)
// for the median.
func Summarize(gen int, pop *Population) (Snapshot, error) {
	if pop == nil {
		return Snapshot{}, ErrNilPopulation
	}

	var (
		lengths = make([]float64, pop.Size())
		i       int
		t       *Tour
		err     error
	)
	for i = 0; i < pop.Size(); i++ {
		t, err = pop.Get(i)
		if err != nil {
			return Snapshot{}, err
		}
		lengths[i], err = t.Length()
		if err != nil {
			return Snapshot{}, err
		}
	}

	best, err := pop.Best()
	if err != nil {
		return Snapshot{}, err
	}
	bestLen, err := best.Length()
	if err != nil {
		return Snapshot{}, err
	}

	mean, err := stats.Mean(lengths)
	if err != nil {
		return Snapshot{}, err
	}
	median, err := stats.Median(lengths)
	if err != nil {
		return Snapshot{}, err
	}
	stddev, err := stats.StandardDeviation(lengths)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Generation: gen,
		Best:       bestLen,
		Mean:       mean,
		Median:     median,
		StdDev:     stddev,
	}, nil
}
