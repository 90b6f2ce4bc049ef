// Package report renders finished batch results for inspection. It only
// consumes search.Result values; nothing here feeds back into the engine.
package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tjburns08/Conv-CA/pkg/search"
)

// WriteTrajectoryPlot saves a PNG of every trial's population trajectory.
// Unclassified trials draw as faint gray lines, classified ones in color, so
// the target band stands out at a glance.
func WriteTrajectoryPlot(res search.Result, path string) error {
	p := plot.New()
	p.Title.Text = "Population trajectories"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "alive cells"

	selected := map[int]bool{}
	for _, idx := range res.Selected {
		selected[idx] = true
	}

	for _, trial := range res.Trials {
		pts := make(plotter.XYs, len(trial.Trajectory))
		for i, pop := range trial.Trajectory {
			pts[i].X = float64(i + 1)
			pts[i].Y = float64(pop)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("trial %d line: %w", trial.Index, err)
		}
		if selected[trial.Index] {
			line.Color = color.RGBA{R: 0xD6, G: 0x45, B: 0x2C, A: 0xFF}
			line.Width = vg.Points(1.5)
		} else {
			line.Color = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0x80}
			line.Width = vg.Points(0.5)
		}
		p.Add(line)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save trajectory plot: %w", err)
	}
	return nil
}
