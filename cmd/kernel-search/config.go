package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tjburns08/Conv-CA/pkg/search"
)

// fileConfig is the TOML shape of a batch run. Zero values fall back to the
// harness defaults, so a config file only needs the fields it changes.
type fileConfig struct {
	Trials     int     `toml:"trials"`
	Steps      int     `toml:"steps"`
	GridSide   int     `toml:"grid_side"`
	Density    float64 `toml:"density"`
	KernelSide int     `toml:"kernel_side"`
	NumOnes    int     `toml:"num_ones"`
	LowerBound int     `toml:"lower_bound"`
	UpperBound int     `toml:"upper_bound"`
	Seed       int64   `toml:"seed"`
	Workers    int     `toml:"workers"`

	PlotPath  string `toml:"plot_path"`
	ChartPath string `toml:"chart_path"`
}

func loadConfig(path string) (fileConfig, error) {
	base := search.DefaultConfig()
	cfg := fileConfig{
		Trials:     base.Trials,
		Steps:      base.Steps,
		GridSide:   base.GridSide,
		Density:    base.Density,
		KernelSide: base.KernelSide,
		NumOnes:    base.NumOnes,
		LowerBound: base.LowerBound,
		UpperBound: base.UpperBound,
		Seed:       base.Seed,
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c fileConfig) searchConfig() search.Config {
	return search.Config{
		Trials:     c.Trials,
		Steps:      c.Steps,
		GridSide:   c.GridSide,
		Density:    c.Density,
		KernelSide: c.KernelSide,
		NumOnes:    c.NumOnes,
		LowerBound: c.LowerBound,
		UpperBound: c.UpperBound,
		Seed:       c.Seed,
		Workers:    c.Workers,
	}
}
