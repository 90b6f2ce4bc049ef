//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/tjburns08/Conv-CA/internal/app"
	"github.com/tjburns08/Conv-CA/internal/core"
	_ "github.com/tjburns08/Conv-CA/internal/sims/convlife"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatal().Str("sim", cfg.Sim).Msg("unknown sim")
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("conv-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
