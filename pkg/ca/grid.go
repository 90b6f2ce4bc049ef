package ca

import "github.com/tjburns08/Conv-CA/pkg/core"

// Grid is a square board of cell states stored row-major, 0 dead and 1
// alive. Cell states stay uint8 so population sums are plain arithmetic;
// kernel weights use a separate signed type and must never be mixed in.
type Grid struct {
	side  int
	cells []uint8
}

// NewGrid allocates an all-dead grid with the given side.
func NewGrid(side int) Grid {
	if side < 1 {
		side = 1
	}
	return Grid{side: side, cells: make([]uint8, side*side)}
}

// RandomGrid fills a fresh grid by an independent Bernoulli draw per cell:
// each cell is alive with probability density.
func RandomGrid(side int, density float64, rng *core.RNG) Grid {
	g := NewGrid(side)
	core.FillBernoulli(rng.Source(), g.cells, density)
	return g
}

// Side returns the grid dimension.
func (g Grid) Side() int { return g.side }

// At returns the cell state at (x, y).
func (g Grid) At(x, y int) uint8 { return g.cells[y*g.side+x] }

// Set writes the cell state at (x, y).
func (g Grid) Set(x, y int, v uint8) { g.cells[y*g.side+x] = v }

// Cells exposes the backing slice so renderers can read values directly.
func (g Grid) Cells() []uint8 { return g.cells }

// Clone returns a deep copy. Steps always produce a new grid; the input is
// never aliased across generations.
func (g Grid) Clone() Grid {
	out := Grid{side: g.side, cells: make([]uint8, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Population counts the alive cells.
func (g Grid) Population() int {
	total := 0
	for _, c := range g.cells {
		total += int(c)
	}
	return total
}
