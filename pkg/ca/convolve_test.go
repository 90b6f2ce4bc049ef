package ca

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tjburns08/Conv-CA/pkg/core"
)

func TestConvolveRejectsEvenKernel(t *testing.T) {
	g := NewGrid(10)
	// Constructors cannot produce an even kernel; the zero value stands in
	// for one handed over by a careless caller.
	if _, err := Convolve(g, Kernel{}); !errors.Is(err, ErrInvalidKernel) {
		t.Fatalf("got err %v, want ErrInvalidKernel", err)
	}
}

func TestConvolveRejectsSmallGrid(t *testing.T) {
	k := ConwayKernel()
	if _, err := Convolve(NewGrid(3), k); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("equal sides: got err %v, want ErrInvalidDimensions", err)
	}
	if _, err := Convolve(NewGrid(2), k); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("smaller grid: got err %v, want ErrInvalidDimensions", err)
	}
}

func TestConvolveKnownWindow(t *testing.T) {
	// 5x5 grid with a single live cell at (2,2); the Conway kernel sum at
	// each of its 8 neighbors must be 1, at the cell itself 0.
	g := NewGrid(5)
	g.Set(2, 2, 1)

	f, err := Convolve(g, ConwayKernel())
	if err != nil {
		t.Fatal(err)
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			want := 1
			if x == 2 && y == 2 {
				want = 0
			}
			if got := f.Sum(x, y); got != want {
				t.Fatalf("sum at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestConvolveWeightedWindow(t *testing.T) {
	g := NewGrid(5)
	g.Set(1, 1, 1)
	g.Set(3, 3, 1)

	zero, err := ZeroKernel(3)
	if err != nil {
		t.Fatal(err)
	}
	k := RingMask(zero, 2)

	f, err := Convolve(g, k)
	if err != nil {
		t.Fatal(err)
	}
	// (2,2) sees both live cells on the kernel ring, each weighted 2.
	if got := f.Sum(2, 2); got != 4 {
		t.Fatalf("sum at center = %d, want 4", got)
	}
}

func TestConvolveBorderPassthrough(t *testing.T) {
	rng := core.NewRNG(21)
	g := RandomGrid(12, 0.5, rng)
	k, err := ExactCompositionKernel(5, 7, rng)
	if err != nil {
		t.Fatal(err)
	}

	f, err := Convolve(g, k)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < g.Side(); y++ {
		for x := 0; x < g.Side(); x++ {
			if f.Interior(x, y) {
				continue
			}
			if got, want := f.Sum(x, y), int(g.At(x, y)); got != want {
				t.Fatalf("border (%d,%d) = %d, want passthrough %d", x, y, got, want)
			}
		}
	}
}

func TestConvolveDoesNotMutateInput(t *testing.T) {
	rng := core.NewRNG(8)
	g := RandomGrid(10, 0.4, rng)
	before := g.Clone()

	if _, err := Convolve(g, ConwayKernel()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before.Cells(), g.Cells()); diff != "" {
		t.Fatalf("input grid changed (-before +after):\n%s", diff)
	}
}

func TestNeighborFieldInterior(t *testing.T) {
	g := NewGrid(8)
	k, err := ExactCompositionKernel(5, 0, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	f, err := Convolve(g, k)
	if err != nil {
		t.Fatal(err)
	}
	if f.Margin() != 2 {
		t.Fatalf("margin = %d, want 2", f.Margin())
	}
	if f.Interior(1, 4) || f.Interior(4, 1) || f.Interior(6, 4) {
		t.Fatal("margin band classified as interior")
	}
	if !f.Interior(2, 2) || !f.Interior(5, 5) {
		t.Fatal("interior cell classified as border")
	}
}
