package ca

// Rule selects the threshold family mapping (cell state, neighbor sum) to the
// next cell state.
type Rule int

const (
	// RuleFixed is the classic 2/3 threshold set, tuned for the canonical
	// 3x3 all-ones kernel with a zero center.
	RuleFixed Rule = iota
	// RuleGeneralized rescales the fixed thresholds to an arbitrary odd
	// kernel side s: with S = s*s - 1, the survival band becomes
	// [S/4, 3S/8] and birth requires the sum to equal 3S/8 exactly.
	RuleGeneralized
)

// String returns the rule name used in configs and logs.
func (r Rule) String() string {
	if r == RuleGeneralized {
		return "generalized"
	}
	return "fixed"
}

func nextFixed(alive bool, sum int) uint8 {
	if alive {
		if sum < 2 || sum > 3 {
			return 0
		}
		return 1
	}
	if sum == 3 {
		return 1
	}
	return 0
}

// nextGeneralized keeps the reference thresholds verbatim: survival is an
// inclusive band while birth is a strict equality against 3S/8. The
// asymmetry is deliberate and must not be widened into a range.
func nextGeneralized(alive bool, sum, kernelSide int) uint8 {
	s := float64(kernelSide*kernelSide - 1)
	lo := s / 4
	hi := 3 * s / 8
	v := float64(sum)
	if alive {
		if v < lo || v > hi {
			return 0
		}
		return 1
	}
	if v == hi {
		return 1
	}
	return 0
}
