package convlife

import (
	"strconv"
	"strings"
)

// KernelPreset names one of the built-in kernel shapes.
type KernelPreset string

const (
	// PresetConway is the 3x3 all-ones kernel with a zero center.
	PresetConway KernelPreset = "conway"
	// PresetRing places a constant weight on the outermost ring of a
	// larger kernel, leaving the interior at zero.
	PresetRing KernelPreset = "ring"
	// PresetRandom shuffles an exact count of ones into the kernel.
	PresetRandom KernelPreset = "random"
)

// Config controls the convolution-life simulation.
type Config struct {
	Side    int
	Seed    int64
	Density float64

	Preset     KernelPreset
	KernelSide int
	RingValue  int
	NumOnes    int

	Generalized bool
}

// DefaultConfig returns the standard configuration: Conway's rule on a
// 256-cell board with a frozen one-cell border.
func DefaultConfig() Config {
	return Config{
		Side:       256,
		Seed:       1337,
		Density:    0.25,
		Preset:     PresetConway,
		KernelSide: 3,
		RingValue:  1,
		NumOnes:    3,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Invalid values are ignored; the result always describes a runnable
// simulation.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["side"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 3 {
			c.Side = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["kernel"]; ok {
		switch KernelPreset(strings.ToLower(v)) {
		case PresetConway, PresetRing, PresetRandom:
			c.Preset = KernelPreset(strings.ToLower(v))
		}
	}
	if v, ok := cfg["kernel_side"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed%2 == 1 {
			c.KernelSide = parsed
		}
	}
	if v, ok := cfg["ring_value"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.RingValue = parsed
		}
	}
	if v, ok := cfg["num_ones"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.NumOnes = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		c.Generalized = strings.EqualFold(v, "generalized")
	}
	if c.KernelSide >= c.Side {
		c.KernelSide = DefaultConfig().KernelSide
	}
	if c.NumOnes > c.KernelSide*c.KernelSide {
		c.NumOnes = c.KernelSide * c.KernelSide
	}
	if c.Preset == PresetConway {
		c.KernelSide = 3
	}
	return c
}
