package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tjburns08/Conv-CA/pkg/search"
)

// WriteClassifiedChart saves an interactive HTML line chart of the
// classified trials' population trajectories.
func WriteClassifiedChart(res search.Result, path string) error {
	classified := res.Classified()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Classified kernel trajectories",
			Subtitle: fmt.Sprintf("%d of %d trials in band", len(classified), len(res.Trials)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "alive cells"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	steps := 0
	for _, trial := range classified {
		if len(trial.Trajectory) > steps {
			steps = len(trial.Trajectory)
		}
	}
	xs := make([]int, steps)
	for i := range xs {
		xs[i] = i + 1
	}
	line.SetXAxis(xs)

	for _, trial := range classified {
		data := make([]opts.LineData, len(trial.Trajectory))
		for i, pop := range trial.Trajectory {
			data[i] = opts.LineData{Value: pop}
		}
		line.AddSeries(fmt.Sprintf("trial %d", trial.Index), data)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
