package snapshot

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"sketchlab/internal/geometry"
)

// SVG writes every shape as one <polyline>. Call Close to finish the document.
type SVG struct {
	canvas *svg.SVG
	proj   Projector
	style  string
	xs, ys []int
}

// NewSVG starts a document of the projector's size on w with a background rectangle.
func NewSVG(w io.Writer, proj Projector, background, stroke color.NRGBA, weight float32) *SVG {
	width, height := int(proj.Width), int(proj.Height)
	s := &SVG{
		canvas: svg.New(w),
		proj:   proj,
		style: fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-opacity:%.3f;stroke-width:%g",
			stroke.R, stroke.G, stroke.B, float32(stroke.A)/255, weight),
	}
	s.canvas.Start(width, height)
	s.canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:rgb(%d,%d,%d)", background.R, background.G, background.B))
	return s
}

// BeginShape starts a new polyline; implements mesh.Surface.
func (s *SVG) BeginShape() {
	s.xs, s.ys = s.xs[:0], s.ys[:0]
}

// Vertex projects p and appends it to the current polyline. Points behind the camera are dropped.
func (s *SVG) Vertex(p geometry.Point3) {
	x, y, ok := s.proj.Project(p)
	if !ok {
		return
	}
	s.xs = append(s.xs, int(x+0.5))
	s.ys = append(s.ys, int(y+0.5))
}

// EndShape writes the shape if it has at least one segment.
func (s *SVG) EndShape() {
	if len(s.xs) < 2 {
		return
	}
	s.canvas.Polyline(s.xs, s.ys, s.style)
}

// Close ends the SVG document.
func (s *SVG) Close() {
	s.canvas.End()
}
