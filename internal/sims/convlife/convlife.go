// Package convlife exposes the convolution-driven life engine as a
// registered simulation. Unlike classic toroidal life the border band inside
// the kernel margin is frozen: those cells keep whatever state the initial
// fill gave them.
package convlife

import (
	"github.com/tjburns08/Conv-CA/internal/core"
	"github.com/tjburns08/Conv-CA/pkg/ca"
	pcore "github.com/tjburns08/Conv-CA/pkg/core"
)

// Life steps a grid with a convolution kernel and a threshold rule.
type Life struct {
	cfg    Config
	grid   ca.Grid
	kernel ca.Kernel
	rule   ca.Rule
	steps  int
}

// New builds the simulation for the given config. The kernel for the random
// preset is drawn on Reset so every seed sees a fresh one.
func New(cfg Config) *Life {
	l := &Life{cfg: cfg, rule: ca.RuleFixed}
	if cfg.Generalized {
		l.rule = ca.RuleGeneralized
	}
	l.Reset(cfg.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "convlife" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Side, H: l.cfg.Side} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// StateLabels names the two cell states for renderers.
func (l *Life) StateLabels() []string { return []string{"Dead", "Alive"} }

// Population counts the alive cells on the current grid.
func (l *Life) Population() int { return l.grid.Population() }

// StepCount reports how many generations have run since the last reset.
func (l *Life) StepCount() int { return l.steps }

// Kernel returns the weight matrix currently in use.
func (l *Life) Kernel() ca.Kernel { return l.kernel }

// Reset rebuilds the grid and kernel deterministically from the seed.
func (l *Life) Reset(seed int64) {
	rng := pcore.NewRNG(seed)
	l.grid = ca.RandomGrid(l.cfg.Side, l.cfg.Density, rng)
	l.kernel = buildKernel(l.cfg, rng)
	l.steps = 0
}

// Step advances the automaton by one generation.
func (l *Life) Step() {
	next, err := ca.Step(l.grid, l.kernel, l.rule)
	if err != nil {
		// FromMap guarantees odd kernel side and kernel < grid, so a
		// step cannot fail once constructed; keep the state unchanged
		// if it somehow does.
		return
	}
	l.grid = next
	l.steps++
}

func buildKernel(cfg Config, rng *pcore.RNG) ca.Kernel {
	switch cfg.Preset {
	case PresetRing:
		zero, err := ca.ZeroKernel(cfg.KernelSide)
		if err != nil {
			return ca.ConwayKernel()
		}
		return ca.RingMask(zero, cfg.RingValue)
	case PresetRandom:
		k, err := ca.ExactCompositionKernel(cfg.KernelSide, cfg.NumOnes, rng)
		if err != nil {
			return ca.ConwayKernel()
		}
		return k
	default:
		return ca.ConwayKernel()
	}
}

func init() {
	core.Register("convlife", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
