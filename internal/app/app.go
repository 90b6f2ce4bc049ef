//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/tjburns08/Conv-CA/internal/core"
	"github.com/tjburns08/Conv-CA/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. The game only
// ever reads grid snapshots; nothing it does feeds back into the engine.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	showHUD  bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	var labels []string
	if labeler, ok := sim.(core.StateLabeler); ok {
		labels = labeler.StateLabels()
	}
	return &Game{
		sim:     sim,
		painter: gp,
		palette: render.LabelPalette(labels),
		scale:   scale,
		showHUD: true,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state plus the step/population HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hudText())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) hudText() string {
	p, ok := g.sim.(core.Populationer)
	if !ok {
		return g.sim.Name()
	}
	return fmt.Sprintf("%s  step=%d  pop=%d", g.sim.Name(), p.StepCount(), p.Population())
}
