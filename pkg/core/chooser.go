package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// ErrInvalidDistribution reports a probability weight vector that does not
// form a valid distribution. Weights are never normalized or clamped on the
// caller's behalf.
var ErrInvalidDistribution = errors.New("invalid probability distribution")

const weightSumTolerance = 1e-9

// Chooser draws indices according to a fixed probability weight vector.
type Chooser struct {
	weights []float64
	w       sampleuv.Weighted
}

// NewChooser validates the weight vector and binds it to the given source.
func NewChooser(src *rand.Rand, weights []float64) (*Chooser, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("empty weight vector: %w", ErrInvalidDistribution)
	}
	sum := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("weight %g at index %d: %w", w, i, ErrInvalidDistribution)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return nil, fmt.Errorf("weights sum to %g, want 1: %w", sum, ErrInvalidDistribution)
	}
	// The sampler mutates the slice it is handed as it takes items, so it
	// gets its own copy; the pristine weights restore it before each draw.
	owned := append([]float64(nil), weights...)
	working := append([]float64(nil), weights...)
	return &Chooser{
		weights: owned,
		w:       sampleuv.NewWeighted(working, src),
	}, nil
}

// Draw returns one index distributed according to the weight vector. Draws
// are independent: the weights are restored before every draw, so a single
// draw of size one is equivalent to sampling with replacement.
func (c *Chooser) Draw() (int, error) {
	c.w.ReweightAll(c.weights)
	idx, ok := c.w.Take()
	if !ok {
		return 0, fmt.Errorf("no drawable weight remains: %w", ErrInvalidDistribution)
	}
	return idx, nil
}
