package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/fogleman/gg"

	"sketchlab/internal/geometry"
)

// Canvas is a persistent raster frame. Nothing clears it between ticks unless Clear is
// called, so a low-alpha Fade leaves trails the same way the window does.
type Canvas struct {
	ctx    *gg.Context
	proj   Projector
	stroke color.NRGBA
	weight float64
	open   int // vertices placed in the current shape's subpath
}

// NewCanvas returns a transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		ctx:    gg.NewContext(w, h),
		stroke: color.NRGBA{A: 255},
		weight: 1,
	}
}

// SetProjector sets how BeginShape/Vertex map 3D points onto the canvas.
func (c *Canvas) SetProjector(p Projector) {
	c.proj = p
}

// SetStroke sets the line color and width for shapes.
func (c *Canvas) SetStroke(col color.NRGBA, weight float32) {
	c.stroke = col
	c.weight = float64(weight)
}

// Clear fills the whole canvas with col, replacing what was there.
func (c *Canvas) Clear(col color.NRGBA) {
	c.ctx.SetColor(col)
	c.ctx.Clear()
}

// BeginShape starts a new polyline; implements mesh.Surface.
func (c *Canvas) BeginShape() {
	c.ctx.ClearPath()
	c.open = 0
}

// Vertex extends the current shape. Points behind the camera break the line.
func (c *Canvas) Vertex(p geometry.Point3) {
	x, y, ok := c.proj.Project(p)
	if !ok {
		c.open = 0
		return
	}
	if c.open == 0 {
		c.ctx.MoveTo(float64(x), float64(y))
	} else {
		c.ctx.LineTo(float64(x), float64(y))
	}
	c.open++
}

// EndShape strokes the current polyline with the stroke color and width.
func (c *Canvas) EndShape() {
	c.ctx.SetColor(c.stroke)
	c.ctx.SetLineWidth(c.weight)
	c.ctx.Stroke()
	c.open = 0
}

// Fade blends col over the whole frame.
func (c *Canvas) Fade(col color.NRGBA) {
	c.ctx.SetColor(col)
	c.ctx.DrawRectangle(0, 0, float64(c.ctx.Width()), float64(c.ctx.Height()))
	c.ctx.Fill()
}

// Circle fills a circle centered on (x, y).
func (c *Canvas) Circle(x, y, radius float32, col color.NRGBA) {
	c.ctx.SetColor(col)
	c.ctx.DrawCircle(float64(x), float64(y), float64(radius))
	c.ctx.Fill()
}

// Image returns the current frame.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the current frame to path, creating its directory if needed.
func (c *Canvas) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := imgio.Save(path, c.ctx.Image(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
