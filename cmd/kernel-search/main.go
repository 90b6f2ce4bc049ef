// Command kernel-search generates random convolution kernels, runs each one
// on a fresh random grid to a fixed horizon, and reports the kernels whose
// final population stays inside the configured band.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tjburns08/Conv-CA/internal/report"
	"github.com/tjburns08/Conv-CA/pkg/search"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML batch config")
	trials := flag.Int("trials", 0, "override: number of independent trials")
	steps := flag.Int("steps", 0, "override: steps per trial")
	gridSide := flag.Int("grid", 0, "override: grid side")
	density := flag.Float64("density", -1, "override: initial alive density")
	kernelSide := flag.Int("kernel", 0, "override: kernel side (odd)")
	numOnes := flag.Int("ones", -1, "override: ones per kernel")
	lower := flag.Int("lower", -1, "override: lower population bound (exclusive)")
	upper := flag.Int("upper", -1, "override: upper population bound (exclusive)")
	seed := flag.Int64("seed", 0, "override: batch seed")
	workers := flag.Int("workers", 0, "override: worker goroutines (0 = NumCPU)")
	plotPath := flag.String("plot", "", "write a PNG of all trajectories to this path")
	chartPath := flag.String("chart", "", "write an HTML chart of classified trials to this path")
	verbose := flag.Bool("v", false, "log per-trial progress")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load batch config")
	}
	applyOverrides(&cfg, *trials, *steps, *gridSide, *density, *kernelSide, *numOnes, *lower, *upper, *seed, *workers)
	if *plotPath != "" {
		cfg.PlotPath = *plotPath
	}
	if *chartPath != "" {
		cfg.ChartPath = *chartPath
	}

	sc := cfg.searchConfig()
	if *verbose {
		sc.Progress = func(done, total int) {
			log.Debug().Int("done", done).Int("total", total).Msg("trial finished")
		}
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().
		Int("trials", sc.Trials).
		Int("steps", sc.Steps).
		Int("grid", sc.GridSide).
		Int("kernel", sc.KernelSide).
		Int("ones", sc.NumOnes).
		Int64("seed", sc.Seed).
		Msg("starting kernel search")

	start := time.Now()
	res, err := search.Run(sc)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	log.Info().
		Int("classified", len(res.Selected)).
		Int("trials", len(res.Trials)).
		Float64("mean_final", res.Mean).
		Float64("stddev_final", res.StdDev).
		Dur("elapsed", time.Since(start)).
		Msg("kernel search done")

	for _, trial := range res.Classified() {
		log.Info().
			Int("trial", trial.Index).
			Int("final", trial.FinalPopulation()).
			Msg("classified kernel\n" + trial.Kernel.String())
	}

	if cfg.PlotPath != "" {
		if err := report.WriteTrajectoryPlot(res, cfg.PlotPath); err != nil {
			log.Fatal().Err(err).Msg("failed to write trajectory plot")
		}
		log.Info().Str("path", cfg.PlotPath).Msg("wrote trajectory plot")
	}
	if cfg.ChartPath != "" {
		if err := report.WriteClassifiedChart(res, cfg.ChartPath); err != nil {
			log.Fatal().Err(err).Msg("failed to write classified chart")
		}
		log.Info().Str("path", cfg.ChartPath).Msg("wrote classified chart")
	}
}

func applyOverrides(cfg *fileConfig, trials, steps, gridSide int, density float64,
	kernelSide, numOnes, lower, upper int, seed int64, workers int) {
	if trials > 0 {
		cfg.Trials = trials
	}
	if steps > 0 {
		cfg.Steps = steps
	}
	if gridSide > 0 {
		cfg.GridSide = gridSide
	}
	if density >= 0 {
		cfg.Density = density
	}
	if kernelSide > 0 {
		cfg.KernelSide = kernelSide
	}
	if numOnes >= 0 {
		cfg.NumOnes = numOnes
	}
	if lower >= 0 {
		cfg.LowerBound = lower
	}
	if upper >= 0 {
		cfg.UpperBound = upper
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if workers > 0 {
		cfg.Workers = workers
	}
}
