package ca

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tjburns08/Conv-CA/pkg/core"
)

func TestStepStillLife(t *testing.T) {
	// A 2x2 block away from the border is a still life under the fixed rule.
	g := NewGrid(8)
	g.Set(3, 3, 1)
	g.Set(4, 3, 1)
	g.Set(3, 4, 1)
	g.Set(4, 4, 1)

	next, err := Step(g, ConwayKernel(), RuleFixed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g.Cells(), next.Cells()); diff != "" {
		t.Fatalf("block changed (-before +after):\n%s", diff)
	}
}

func TestStepLoneCellDies(t *testing.T) {
	g := NewGrid(7)
	g.Set(3, 3, 1)

	next, err := Step(g, ConwayKernel(), RuleFixed)
	if err != nil {
		t.Fatal(err)
	}
	if next.At(3, 3) != 0 {
		t.Fatal("isolated cell survived")
	}
	if next.Population() != 0 {
		t.Fatalf("population %d after lone cell step", next.Population())
	}
}

func TestStepBlinkerPeriodTwo(t *testing.T) {
	g := NewGrid(7)
	set := func(x, y int) { g.Set(x, y, 1) }
	set(2, 3)
	set(3, 3)
	set(4, 3)
	initial := g.Clone()

	once, err := Step(g, ConwayKernel(), RuleFixed)
	if err != nil {
		t.Fatal(err)
	}

	vertical := map[[2]int]bool{{3, 2}: true, {3, 3}: true, {3, 4}: true}
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			alive := once.At(x, y) == 1
			if alive != vertical[[2]int{x, y}] {
				t.Fatalf("after one step cell (%d,%d) alive=%v, expected %v",
					x, y, alive, vertical[[2]int{x, y}])
			}
		}
	}

	twice, err := Step(once, ConwayKernel(), RuleFixed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(initial.Cells(), twice.Cells()); diff != "" {
		t.Fatalf("blinker did not return after two steps (-want +got):\n%s", diff)
	}
}

func TestStepFreezesBorderBand(t *testing.T) {
	rng := core.NewRNG(31)
	g := RandomGrid(15, 0.5, rng)
	k, err := ExactCompositionKernel(5, 8, rng)
	if err != nil {
		t.Fatal(err)
	}

	next, err := Step(g, k, RuleFixed)
	if err != nil {
		t.Fatal(err)
	}
	margin := k.Margin()
	for y := 0; y < g.Side(); y++ {
		for x := 0; x < g.Side(); x++ {
			interior := x >= margin && x < g.Side()-margin &&
				y >= margin && y < g.Side()-margin
			if interior {
				continue
			}
			if next.At(x, y) != g.At(x, y) {
				t.Fatalf("border cell (%d,%d) changed", x, y)
			}
		}
	}
}

func TestRunTrajectoryLength(t *testing.T) {
	rng := core.NewRNG(4)
	g := RandomGrid(20, 0.3, rng)

	final, trajectory, err := Run(g, ConwayKernel(), RuleFixed, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(trajectory) != 12 {
		t.Fatalf("trajectory length %d, want 12", len(trajectory))
	}
	if trajectory[len(trajectory)-1] != final.Population() {
		t.Fatalf("last trajectory entry %d != final population %d",
			trajectory[len(trajectory)-1], final.Population())
	}
}

func TestRunDoesNotAliasGrids(t *testing.T) {
	rng := core.NewRNG(16)
	g := RandomGrid(16, 0.4, rng)
	before := g.Clone()

	if _, _, err := Run(g, ConwayKernel(), RuleFixed, 5); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before.Cells(), g.Cells()); diff != "" {
		t.Fatalf("initial grid mutated by Run (-before +after):\n%s", diff)
	}
}
