package lava

import (
	"image/color"

	"github.com/chewxy/math32"

	"sketchlab/internal/randx"
)

// Span is a half-open sampling range [Min, Max).
type Span struct {
	Min, Max float32
}

func (s Span) sample(r randx.Rand) float32 {
	return randx.Range(r, s.Min, s.Max)
}

// Contains reports whether v lies in [Min, Max].
func (s Span) Contains(v float32) bool {
	return v >= s.Min && v <= s.Max
}

// Params are the sampling ranges and constants of the simulation.
type Params struct {
	Blobs      int
	Size       Span // diameter
	Speed      Span // pixels per tick, upwards
	Red        Span
	Green      Span
	Blue       Span
	Offset     Span    // sway phase
	Sway       float32 // sway frequency k in x += sin(y*k + offset)
	SpawnBelow float32 // respawn distance below the bottom edge
	Trail      color.NRGBA
}

// DefaultParams returns the purple/pink lava lamp of the original sketch.
func DefaultParams() Params {
	return Params{
		Blobs:      15,
		Size:       Span{40, 100},
		Speed:      Span{1, 3},
		Red:        Span{100, 255},
		Green:      Span{0, 100},
		Blue:       Span{100, 255},
		Offset:     Span{0, 1000},
		Sway:       0.01,
		SpawnBelow: 50,
		Trail:      color.NRGBA{R: 10, G: 10, B: 20, A: 20},
	}
}

// Blob is one rising particle.
type Blob struct {
	X, Y   float32
	Size   float32
	Speed  float32
	Color  color.NRGBA
	Offset float32
}

// Reset places the blob just below the bottom edge with fresh size, speed, color and offset.
func (b *Blob) Reset(p Params, r randx.Rand, width, height float32) {
	b.X = randx.Range(r, 0, width)
	b.Y = height + p.SpawnBelow
	b.Size = p.Size.sample(r)
	b.Speed = p.Speed.sample(r)
	b.Color = color.NRGBA{
		R: uint8(p.Red.sample(r)),
		G: uint8(p.Green.sample(r)),
		B: uint8(p.Blue.sample(r)),
		A: 255,
	}
	b.Offset = p.Offset.sample(r)
}

// Update moves the blob up and sways it sideways. It reports whether the blob floated off
// the top and was reset. Only the vertical position wraps; sideways drift is left alone.
func (b *Blob) Update(p Params, r randx.Rand, width, height float32) bool {
	b.Y -= b.Speed
	b.X += math32.Sin(b.Y*p.Sway + b.Offset)
	if b.Y < -b.Size {
		b.Reset(p, r, width, height)
		return true
	}
	return false
}
