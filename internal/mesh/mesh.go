// Package mesh turns a reveal state into the wormhole lines visible on a frame.
package mesh

import (
	"sketchlab/internal/geometry"
	"sketchlab/internal/noise"
	"sketchlab/internal/reveal"
)

// Surface is the drawing surface lines are emitted to. Each line is one
// BeginShape, its vertices in order, then EndShape, so it can be stroked as a single curve.
type Surface interface {
	BeginShape()
	Vertex(p geometry.Point3)
	EndShape()
}

// Line is one longitudinal (constant longitude) or circumferential (constant depth) curve.
type Line struct {
	Kind   reveal.Phase
	Index  int
	Points []geometry.Point3
}

// Mesh generates the lines of a surface with scribble jitter applied.
type Mesh struct {
	Surface geometry.Surface
	Jitter  noise.Jitter
}

// New returns a mesh over s with jitter j.
func New(s geometry.Surface, j noise.Jitter) *Mesh {
	return &Mesh{Surface: s, Jitter: j}
}

// Limits are the reveal limits matching the mesh subdivisions.
func (m *Mesh) Limits() reveal.Limits {
	return reveal.Limits{Longitudes: m.Surface.Longitudes, Depths: m.Surface.Depths}
}

// Lines returns the lines visible in state st, the partial one last.
// Lines are built fresh on every call.
func (m *Mesh) Lines(st reveal.State) []Line {
	lim := m.Limits()
	var lines []Line

	if st.Phase == reveal.Longitudinal && !st.Complete {
		for i := 0; i < st.Line; i++ {
			lines = append(lines, m.longitudinal(i, lim.Depths))
		}
		return append(lines, m.longitudinal(st.Line, st.Segment))
	}

	// The circumferential phase only starts once every longitudinal line is done.
	for i := 0; i <= lim.Longitudes; i++ {
		lines = append(lines, m.longitudinal(i, lim.Depths))
	}
	if st.Complete {
		for j := 0; j <= lim.Depths; j++ {
			lines = append(lines, m.circumferential(j, lim.Longitudes))
		}
		return lines
	}
	for j := 0; j < st.Line; j++ {
		lines = append(lines, m.circumferential(j, lim.Longitudes))
	}
	return append(lines, m.circumferential(st.Line, st.Segment))
}

// Render emits the lines visible in st to dst.
func (m *Mesh) Render(dst Surface, st reveal.State) {
	for _, l := range m.Lines(st) {
		dst.BeginShape()
		for _, p := range l.Points {
			dst.Vertex(p)
		}
		dst.EndShape()
	}
}

// VertexCount is the number of vertices Render emits for st.
func (m *Mesh) VertexCount(st reveal.State) int {
	n := 0
	for _, l := range m.Lines(st) {
		n += len(l.Points)
	}
	return n
}

// longitudinal builds the line at longitude i through depth steps 0..upTo.
func (m *Mesh) longitudinal(i, upTo int) Line {
	pts := make([]geometry.Point3, 0, upTo+1)
	for j := 0; j <= upTo; j++ {
		pts = append(pts, m.Surface.Point(i, j).Offset(m.Jitter.At(i, j)))
	}
	return Line{Kind: reveal.Longitudinal, Index: i, Points: pts}
}

// circumferential builds the ring at depth j through longitude steps 0..upTo.
func (m *Mesh) circumferential(j, upTo int) Line {
	pts := make([]geometry.Point3, 0, upTo+1)
	for i := 0; i <= upTo; i++ {
		pts = append(pts, m.Surface.Point(i, j).Offset(m.Jitter.At(j, i)))
	}
	return Line{Kind: reveal.Circumferential, Index: j, Points: pts}
}
