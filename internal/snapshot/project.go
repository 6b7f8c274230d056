// Package snapshot renders sketches without a window: a raster canvas saved as PNG and an
// SVG exporter for the wormhole lines.
package snapshot

import (
	"github.com/chewxy/math32"

	"sketchlab/internal/geometry"
)

// Projector maps render space to image coordinates the way the window camera does:
// the scene is tilted about X, then viewed from Distance along +Z with a vertical field of
// view of Fovy degrees. Image Y grows downwards.
type Projector struct {
	Width, Height float32
	Tilt          float32 // radians about X
	Distance      float32
	Fovy          float32 // degrees
}

// near is the closest depth in front of the camera that still projects.
const near = 1

// Project returns the image position of p and false if p is behind the camera.
func (pr Projector) Project(p geometry.Point3) (x, y float32, ok bool) {
	sin, cos := math32.Sin(pr.Tilt), math32.Cos(pr.Tilt)
	ry := p.Y*cos - p.Z*sin
	rz := p.Y*sin + p.Z*cos

	depth := pr.Distance - rz
	if depth < near {
		return 0, 0, false
	}
	f := (pr.Height / 2) / math32.Tan(pr.Fovy*math32.Pi/360)
	return pr.Width/2 + f*p.X/depth, pr.Height/2 - f*ry/depth, true
}
