// Package search runs batches of independent kernel trials and classifies
// the kernels whose long-run population lands inside a target band.
package search

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/tjburns08/Conv-CA/pkg/ca"
	"github.com/tjburns08/Conv-CA/pkg/core"
)

// Config controls one batch run. Every trial draws a fresh grid and a fresh
// exact-composition kernel, steps it under the fixed rule, and records the
// population after each step.
type Config struct {
	Trials     int
	Steps      int
	GridSide   int
	Density    float64
	KernelSide int
	NumOnes    int

	// Classification keeps trials whose final population lies strictly
	// between the bounds: neither extinct nor exploded.
	LowerBound int
	UpperBound int

	Seed    int64
	Workers int

	// Progress, when set, is invoked from the collector goroutine after
	// each finished trial with the running completion count.
	Progress func(done, total int)
}

// DefaultConfig returns the standard batch parameters.
func DefaultConfig() Config {
	return Config{
		Trials:     100,
		Steps:      100,
		GridSide:   50,
		Density:    0.1,
		KernelSide: 5,
		NumOnes:    6,
		LowerBound: 10,
		UpperBound: 400,
		Seed:       1337,
	}
}

// Validate checks every precondition before any trial runs. A bad config
// fails the whole batch up front; no partial results are produced.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if c.KernelSide < 1 || c.KernelSide%2 == 0 {
		return fmt.Errorf("side %d: %w", c.KernelSide, ca.ErrInvalidKernel)
	}
	if c.GridSide <= c.KernelSide {
		return fmt.Errorf("grid side %d with kernel side %d: %w",
			c.GridSide, c.KernelSide, ca.ErrInvalidDimensions)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %g outside [0, 1]: %w", c.Density, ca.ErrInvalidDistribution)
	}
	if c.NumOnes < 0 || c.NumOnes > c.KernelSide*c.KernelSide {
		return fmt.Errorf("numOnes %d outside [0, %d]: %w",
			c.NumOnes, c.KernelSide*c.KernelSide, ca.ErrInvalidDistribution)
	}
	if c.UpperBound <= c.LowerBound {
		return fmt.Errorf("bounds (%d, %d) form an empty band", c.LowerBound, c.UpperBound)
	}
	return nil
}

// Trial records one independent run: the kernel it used, the grid it ended
// on, and the population after every step.
type Trial struct {
	Index      int
	Kernel     ca.Kernel
	Final      ca.Grid
	Trajectory []int
}

// FinalPopulation is the last trajectory entry, the value classification
// tests against.
func (t Trial) FinalPopulation() int {
	return t.Trajectory[len(t.Trajectory)-1]
}

// Result holds every trial in index order plus the classified subset.
type Result struct {
	Trials []Trial

	// Selected are the indices whose final population lies strictly
	// inside (LowerBound, UpperBound).
	Selected []int

	// Mean and StdDev summarize the final populations across all trials.
	Mean   float64
	StdDev float64
}

// Classified returns the selected trials for inspection.
func (r Result) Classified() []Trial {
	out := make([]Trial, 0, len(r.Selected))
	for _, idx := range r.Selected {
		out = append(out, r.Trials[idx])
	}
	return out
}

type trialOut struct {
	trial Trial
	err   error
}

// Run executes the batch. Trials share no state: each gets its own RNG
// stream keyed by (seed, trial index), so results are identical for any
// worker count.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	jobs := make(chan int)
	results := make(chan trialOut)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results <- runTrial(cfg, idx)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for idx := 0; idx < cfg.Trials; idx++ {
			jobs <- idx
		}
		close(jobs)
	}()

	trials := make([]Trial, 0, cfg.Trials)
	var firstErr error
	done := 0
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		trials = append(trials, out.trial)
		done++
		if cfg.Progress != nil {
			cfg.Progress(done, cfg.Trials)
		}
	}
	if firstErr != nil {
		return Result{}, firstErr
	}

	sort.Slice(trials, func(i, j int) bool { return trials[i].Index < trials[j].Index })

	finals := make([]float64, len(trials))
	var selected []int
	for i, t := range trials {
		final := t.FinalPopulation()
		finals[i] = float64(final)
		if final > cfg.LowerBound && final < cfg.UpperBound {
			selected = append(selected, t.Index)
		}
	}

	return Result{
		Trials:   trials,
		Selected: selected,
		Mean:     stat.Mean(finals, nil),
		StdDev:   stat.StdDev(finals, nil),
	}, nil
}

func runTrial(cfg Config, idx int) trialOut {
	rng := core.NewStream(cfg.Seed, uint64(idx))

	grid := ca.RandomGrid(cfg.GridSide, cfg.Density, rng)
	kernel, err := ca.ExactCompositionKernel(cfg.KernelSide, cfg.NumOnes, rng)
	if err != nil {
		return trialOut{err: fmt.Errorf("trial %d: %w", idx, err)}
	}

	final, trajectory, err := ca.Run(grid, kernel, ca.RuleFixed, cfg.Steps)
	if err != nil {
		return trialOut{err: fmt.Errorf("trial %d: %w", idx, err)}
	}

	return trialOut{trial: Trial{
		Index:      idx,
		Kernel:     kernel,
		Final:      final,
		Trajectory: trajectory,
	}}
}
