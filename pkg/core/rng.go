package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewStream creates an RNG on an independent stream of the same seed. Batch
// trials use one stream per trial so results do not depend on worker
// scheduling.
func NewStream(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a uniform value in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Shuffle applies a uniform random permutation to n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// FillBernoulli fills the buffer with 1s at probability p and 0s otherwise.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
