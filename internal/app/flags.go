package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Opts  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "convlife", Scale: 3, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Opts, "opts", c.Opts, "comma separated key=value sim options")
}

// SimOptions parses the -opts flag into the map sim factories consume.
func (c *Config) SimOptions() map[string]string {
	if c.Opts == "" {
		return nil
	}
	out := map[string]string{}
	for _, pair := range strings.Split(c.Opts, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}
	return out
}
