package ca

import "fmt"

// NeighborField holds the convolution sum for every cell of a grid. Sums are
// meaningful only on interior cells; border entries are passthrough copies of
// the original cell values. Interior reports which is which, so callers never
// have to reconstruct the margin themselves.
type NeighborField struct {
	side   int
	margin int
	sums   []int
}

// Side returns the field dimension (same as the convolved grid).
func (f NeighborField) Side() int { return f.side }

// Margin returns the border band width inherited from the kernel.
func (f NeighborField) Margin() int { return f.margin }

// Interior reports whether (x, y) carries a real convolution sum.
func (f NeighborField) Interior(x, y int) bool {
	return x >= f.margin && x < f.side-f.margin &&
		y >= f.margin && y < f.side-f.margin
}

// Sum returns the value at (x, y): a neighbor-weight sum on the interior, the
// original cell value on the border.
func (f NeighborField) Sum(x, y int) int { return f.sums[y*f.side+x] }

// Convolve slides the kernel over the grid's interior and returns the
// per-cell neighbor-weight sums. Border cells within the kernel margin keep
// the original grid values; the input grid is not modified.
func Convolve(g Grid, k Kernel) (NeighborField, error) {
	if k.side < 1 || k.side%2 == 0 {
		return NeighborField{}, fmt.Errorf("side %d: %w", k.side, ErrInvalidKernel)
	}
	if g.side <= k.side {
		return NeighborField{}, fmt.Errorf("grid side %d with kernel side %d: %w",
			g.side, k.side, ErrInvalidDimensions)
	}

	margin := k.Margin()
	f := NeighborField{side: g.side, margin: margin, sums: make([]int, len(g.cells))}
	for i, c := range g.cells {
		f.sums[i] = int(c)
	}

	for y := margin; y < g.side-margin; y++ {
		for x := margin; x < g.side-margin; x++ {
			sum := 0
			for ky := 0; ky < k.side; ky++ {
				row := (y + ky - margin) * g.side
				for kx := 0; kx < k.side; kx++ {
					sum += int(g.cells[row+x+kx-margin]) * k.weights[ky*k.side+kx]
				}
			}
			f.sums[y*g.side+x] = sum
		}
	}
	return f, nil
}
