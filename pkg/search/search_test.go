package search

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjburns08/Conv-CA/pkg/ca"
)

func testConfig() Config {
	return Config{
		Trials:     20,
		Steps:      15,
		GridSide:   24,
		Density:    0.2,
		KernelSide: 3,
		NumOnes:    3,
		LowerBound: 0,
		UpperBound: 1000,
		Seed:       99,
		Workers:    4,
	}
}

func TestRunProducesAllTrials(t *testing.T) {
	t.Parallel()
	res, err := Run(testConfig())
	require.NoError(t, err)

	require.Len(t, res.Trials, 20)
	for i, trial := range res.Trials {
		assert.Equal(t, i, trial.Index, "trials must come back in index order")
		assert.Len(t, trial.Trajectory, 15)
		assert.Equal(t, 3, trial.Kernel.Side())
		assert.Equal(t, trial.Trajectory[len(trial.Trajectory)-1], trial.Final.Population())
	}
}

func TestRunClassificationBoundsAreStrict(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Trials = 40
	cfg.LowerBound = 5
	cfg.UpperBound = 60

	res, err := Run(cfg)
	require.NoError(t, err)

	selected := map[int]bool{}
	for _, idx := range res.Selected {
		selected[idx] = true
	}
	for _, trial := range res.Trials {
		final := trial.FinalPopulation()
		inBand := final > cfg.LowerBound && final < cfg.UpperBound
		assert.Equal(t, inBand, selected[trial.Index],
			"trial %d final %d", trial.Index, final)
	}

	classified := res.Classified()
	require.Len(t, classified, len(res.Selected))
	for _, trial := range classified {
		assert.Greater(t, trial.FinalPopulation(), cfg.LowerBound)
		assert.Less(t, trial.FinalPopulation(), cfg.UpperBound)
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	t.Parallel()
	base := testConfig()

	serial := base
	serial.Workers = 1
	parallel := base
	parallel.Workers = 8

	a, err := Run(serial)
	require.NoError(t, err)
	b, err := Run(parallel)
	require.NoError(t, err)

	require.Equal(t, a.Selected, b.Selected)
	for i := range a.Trials {
		assert.Equal(t, a.Trials[i].Trajectory, b.Trials[i].Trajectory)
		assert.Equal(t, a.Trials[i].Kernel.Weights(), b.Trials[i].Kernel.Weights())
	}
	assert.Equal(t, a.Mean, b.Mean)
	assert.Equal(t, a.StdDev, b.StdDev)
}

func TestRunSeedChangesResults(t *testing.T) {
	t.Parallel()
	a, err := Run(testConfig())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Seed = 100
	b, err := Run(cfg)
	require.NoError(t, err)

	same := true
	for i := range a.Trials {
		if !assert.ObjectsAreEqual(a.Trials[i].Trajectory, b.Trials[i].Trajectory) {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds must not replay the same batch")
}

func TestRunProgressHook(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	var calls atomic.Int64
	var last atomic.Int64
	cfg.Progress = func(done, total int) {
		calls.Add(1)
		last.Store(int64(done))
		assert.Equal(t, cfg.Trials, total)
	}

	_, err := Run(cfg)
	require.NoError(t, err)
	assert.EqualValues(t, cfg.Trials, calls.Load())
	assert.EqualValues(t, cfg.Trials, last.Load())
}

func TestRunRejectsInvalidConfigs(t *testing.T) {
	t.Parallel()

	t.Run("even kernel side", func(t *testing.T) {
		cfg := testConfig()
		cfg.KernelSide = 4
		_, err := Run(cfg)
		require.ErrorIs(t, err, ca.ErrInvalidKernel)
	})

	t.Run("grid not larger than kernel", func(t *testing.T) {
		cfg := testConfig()
		cfg.GridSide = 3
		_, err := Run(cfg)
		require.ErrorIs(t, err, ca.ErrInvalidDimensions)
	})

	t.Run("numOnes out of range", func(t *testing.T) {
		cfg := testConfig()
		cfg.NumOnes = 10
		_, err := Run(cfg)
		require.ErrorIs(t, err, ca.ErrInvalidDistribution)
	})

	t.Run("density out of range", func(t *testing.T) {
		cfg := testConfig()
		cfg.Density = 1.5
		_, err := Run(cfg)
		require.ErrorIs(t, err, ca.ErrInvalidDistribution)
	})

	t.Run("empty band", func(t *testing.T) {
		cfg := testConfig()
		cfg.LowerBound = 10
		cfg.UpperBound = 10
		_, err := Run(cfg)
		require.Error(t, err)
	})

	t.Run("no trials", func(t *testing.T) {
		cfg := testConfig()
		cfg.Trials = 0
		_, err := Run(cfg)
		require.Error(t, err)
	})
}
