package ca

import (
	"fmt"
	"strings"

	"github.com/tjburns08/Conv-CA/pkg/core"
)

// Kernel is a square matrix of signed integer convolution weights. The side
// is always odd; constructors reject anything else. By convention the center
// weight is 0 so a cell does not count itself, but that is not enforced.
type Kernel struct {
	side    int
	weights []int
}

// ZeroKernel returns an all-zero kernel with the given odd side.
func ZeroKernel(side int) (Kernel, error) {
	if side < 1 || side%2 == 0 {
		return Kernel{}, fmt.Errorf("side %d: %w", side, ErrInvalidKernel)
	}
	return Kernel{side: side, weights: make([]int, side*side)}, nil
}

// ConwayKernel returns the canonical 3x3 all-ones kernel with a zero center.
func ConwayKernel() Kernel {
	k, _ := ZeroKernel(3)
	return RingMask(k, 1)
}

// RingMask returns a copy of k with every cell of the outermost ring set to
// value. Interior cells are left untouched, so applying it to a zero kernel
// yields a weight matrix whose entire contribution comes from the ring.
func RingMask(k Kernel, value int) Kernel {
	out := Kernel{side: k.side, weights: append([]int(nil), k.weights...)}
	last := k.side - 1
	for y := 0; y < k.side; y++ {
		for x := 0; x < k.side; x++ {
			if x == 0 || y == 0 || x == last || y == last {
				out.weights[y*k.side+x] = value
			}
		}
	}
	return out
}

// CategoricalKernel fills each cell independently with one value drawn from
// numbers according to the probability weights in probs. Draws are i.i.d.
// per cell; there is no guarantee on how often any value appears.
func CategoricalKernel(side int, numbers []int, probs []float64, rng *core.RNG) (Kernel, error) {
	k, err := ZeroKernel(side)
	if err != nil {
		return Kernel{}, err
	}
	if len(numbers) == 0 || len(numbers) != len(probs) {
		return Kernel{}, fmt.Errorf("%d values against %d weights: %w",
			len(numbers), len(probs), ErrInvalidDistribution)
	}
	chooser, err := core.NewChooser(rng.Source(), probs)
	if err != nil {
		return Kernel{}, err
	}
	for i := range k.weights {
		idx, err := chooser.Draw()
		if err != nil {
			return Kernel{}, err
		}
		k.weights[i] = numbers[idx]
	}
	return k, nil
}

// ExactCompositionKernel builds a kernel containing exactly numOnes ones and
// zeros elsewhere, placed by a uniform random permutation. Unlike
// CategoricalKernel the count of ones is guaranteed, not merely expected.
func ExactCompositionKernel(side, numOnes int, rng *core.RNG) (Kernel, error) {
	k, err := ZeroKernel(side)
	if err != nil {
		return Kernel{}, err
	}
	if numOnes < 0 || numOnes > side*side {
		return Kernel{}, fmt.Errorf("numOnes %d outside [0, %d]: %w",
			numOnes, side*side, ErrInvalidDistribution)
	}
	for i := 0; i < numOnes; i++ {
		k.weights[i] = 1
	}
	rng.Shuffle(len(k.weights), func(i, j int) {
		k.weights[i], k.weights[j] = k.weights[j], k.weights[i]
	})
	return k, nil
}

// Side returns the kernel dimension.
func (k Kernel) Side() int { return k.side }

// Margin is the half-width of the kernel, (side-1)/2. Grid cells within
// margin of the edge are never recomputed by convolution.
func (k Kernel) Margin() int { return (k.side - 1) / 2 }

// At returns the weight at (x, y).
func (k Kernel) At(x, y int) int { return k.weights[y*k.side+x] }

// Weights exposes the backing slice in row-major order.
func (k Kernel) Weights() []int { return k.weights }

// String renders the weight matrix one row per line.
func (k Kernel) String() string {
	var b strings.Builder
	for y := 0; y < k.side; y++ {
		for x := 0; x < k.side; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%2d", k.weights[y*k.side+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
