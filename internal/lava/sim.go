// Package lava is the lava lamp sketch: blobs rise, sway and respawn at the bottom,
// drawn over a faded copy of the previous frame to leave trails.
package lava

import (
	"image/color"

	"sketchlab/internal/randx"
)

// Canvas is what the simulation draws onto. Fade must blend c over the existing frame
// rather than clearing it; that blending is what produces the trails.
type Canvas interface {
	Fade(c color.NRGBA)
	Circle(x, y, radius float32, c color.NRGBA)
}

// Sim holds the blobs and the canvas bounds.
type Sim struct {
	Params Params
	Blobs  []Blob
	Width  float32
	Height float32
	rnd    randx.Rand
}

// New returns a simulation of p.Blobs blobs spread over the full height of a w×h canvas.
func New(p Params, w, h float32, rnd randx.Rand) *Sim {
	s := &Sim{Params: p, Width: w, Height: h, rnd: rnd}
	s.Blobs = make([]Blob, p.Blobs)
	for i := range s.Blobs {
		b := &s.Blobs[i]
		b.Reset(p, rnd, w, h)
		b.Y = randx.Range(rnd, 0, h)
	}
	return s
}

// Resize changes the canvas bounds used for respawning. Blobs keep their state.
func (s *Sim) Resize(w, h float32) {
	s.Width, s.Height = w, h
}

// Update advances every blob one tick and returns how many respawned.
func (s *Sim) Update() int {
	n := 0
	for i := range s.Blobs {
		if s.Blobs[i].Update(s.Params, s.rnd, s.Width, s.Height) {
			n++
		}
	}
	return n
}

// Draw fades the previous frame and paints every blob as a filled circle.
func (s *Sim) Draw(c Canvas) {
	c.Fade(s.Params.Trail)
	for _, b := range s.Blobs {
		c.Circle(b.X, b.Y, b.Size/2, b.Color)
	}
}
