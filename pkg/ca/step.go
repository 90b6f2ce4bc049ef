package ca

// Step advances the grid by one generation: convolve with the kernel, then
// apply the rule to every interior cell. Cells inside the kernel margin pass
// through unchanged from the input grid. Pure; the input grid is never
// mutated.
func Step(g Grid, k Kernel, rule Rule) (Grid, error) {
	field, err := Convolve(g, k)
	if err != nil {
		return Grid{}, err
	}

	next := g.Clone()
	for y := 0; y < g.side; y++ {
		for x := 0; x < g.side; x++ {
			if !field.Interior(x, y) {
				continue
			}
			alive := g.cells[y*g.side+x] == 1
			sum := field.Sum(x, y)
			if rule == RuleGeneralized {
				next.cells[y*g.side+x] = nextGeneralized(alive, sum, k.side)
			} else {
				next.cells[y*g.side+x] = nextFixed(alive, sum)
			}
		}
	}
	return next, nil
}

// Run folds Step over the given number of generations and records the
// population after every step. The returned trajectory has exactly steps
// entries; the initial grid's population is not part of it.
func Run(g Grid, k Kernel, rule Rule, steps int) (Grid, []int, error) {
	trajectory := make([]int, 0, steps)
	cur := g
	for i := 0; i < steps; i++ {
		next, err := Step(cur, k, rule)
		if err != nil {
			return Grid{}, nil, err
		}
		cur = next
		trajectory = append(trajectory, cur.Population())
	}
	return cur, trajectory, nil
}
