// Package lavagame hosts the lava simulation in an ebiten window.
package lavagame

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sketchlab/internal/lava"
)

// Game adapts a lava.Sim to ebiten.Game. The screen is not cleared between frames, so
// the simulation's Fade blends over the previous frame and leaves trails.
type Game struct {
	sim  *lava.Sim
	log  *slog.Logger
	w, h int
}

// New returns a game for sim. log may be nil.
func New(sim *lava.Sim, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Game{sim: sim, log: log, w: int(sim.Width), h: int(sim.Height)}
}

// Run opens a resizable window and blocks until it closes.
func Run(g *Game, title string, tps int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

// Update advances the simulation one tick; implements ebiten.Game.
func (g *Game) Update() error {
	if n := g.sim.Update(); n > 0 {
		g.log.Debug("blobs respawned", "count", n)
	}
	return nil
}

// Draw fades the previous frame and paints the blobs onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Draw(screenCanvas{screen})
}

// Layout uses the window size as the canvas size. A change only resizes the simulation bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.sim.Resize(float32(g.w), float32(g.h))
		g.log.Info("canvas resized", "width", g.w, "height", g.h)
	}
	return g.w, g.h
}

// screenCanvas draws lava onto an ebiten image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) Fade(col color.NRGBA) {
	b := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), col, false)
}

func (c screenCanvas) Circle(x, y, radius float32, col color.NRGBA) {
	vector.DrawFilledCircle(c.dst, x, y, radius, col, true)
}
