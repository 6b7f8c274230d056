package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4

	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws text overlays on top of a sketch: FPS and heap allocation at the top-right,
// and a status line (e.g. reveal progress) at the bottom-left. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool
	Color        rl.Color
	// Status is called every frame while ShowStatus is set.
	Status       func() string

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug overlay with everything hidden.
func New() *Debug {
	return &Debug{Color: rl.Green}
}

// Draw renders the enabled overlays. Call after the scene in the draw loop.
// FPS and memory text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	frame := d.frameCount
	d.frameCount++

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if refresh(frame, d.lastFpsText) {
			d.lastFpsText = fpsText(rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if refresh(frame, d.lastMemText) {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = memText(d.lastMemStats.Alloc)
		}
		d.drawRight(d.lastMemText, screenW, y)
	}

	if d.ShowStatus && d.Status != nil {
		// The reveal moves every tick, so the status is refreshed every frame.
		rl.DrawText(d.Status(), padding, int32(rl.GetScreenHeight())-padding-fontSize, fontSize, d.Color)
	}
}

// refresh reports whether cached text is recomputed on the given frame.
func refresh(frame uint32, cached string) bool {
	return frame%updateInterval == 0 || cached == ""
}

func fpsText(fps int32) string {
	return fmt.Sprintf("FPS: %d", fps)
}

// memText formats a heap allocation in MiB.
func memText(alloc uint64) string {
	return fmt.Sprintf("Mem: %.2f MiB", float64(alloc)/(1024*1024))
}

func (d *Debug) drawRight(text string, screenW, y int32) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, d.Color)
}
