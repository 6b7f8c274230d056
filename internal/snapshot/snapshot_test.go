package snapshot

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchlab/internal/geometry"
	"sketchlab/internal/lava"
	"sketchlab/internal/mesh"
	"sketchlab/internal/noise"
	"sketchlab/internal/randx"
	"sketchlab/internal/reveal"
)

var proj = Projector{Width: 200, Height: 100, Distance: 600, Fovy: 45}

func TestProjectorCenterAndAxes(t *testing.T) {
	x, y, ok := proj.Project(geometry.Point3{})
	require.True(t, ok)
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)

	x, y, _ = proj.Project(geometry.Point3{X: 10, Y: 10})
	assert.Greater(t, x, float32(100), "+X is right")
	assert.Less(t, y, float32(50), "+Y is up")

	_, _, ok = proj.Project(geometry.Point3{Z: 600})
	assert.False(t, ok, "camera plane does not project")
}

func TestProjectorTilt(t *testing.T) {
	tilted := proj
	tilted.Tilt = math32.Pi / 2
	// A quarter turn about X takes +Y onto +Z, towards the camera, so it stays centered.
	x, y, ok := tilted.Project(geometry.Point3{Y: 100})
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
}

func TestCanvasStrokesMesh(t *testing.T) {
	c := NewCanvas(200, 100)
	c.Clear(color.NRGBA{A: 255})
	c.SetProjector(proj)
	c.SetStroke(color.NRGBA{R: 255, A: 255}, 3)

	c.BeginShape()
	c.Vertex(geometry.Point3{X: -100})
	c.Vertex(geometry.Point3{X: 100})
	c.EndShape()

	r, g, _, _ := c.Image().At(100, 50).RGBA()
	assert.Greater(t, r, uint32(0x8000))
	assert.Equal(t, uint32(0), g)
	r, _, _, _ = c.Image().At(100, 10).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestCanvasFadeBlends(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	c.Fade(color.NRGBA{A: 128})
	r, _, _, a := c.Image().At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Less(t, r, uint32(0xffff), "faded")
	assert.Greater(t, r, uint32(0), "not replaced")
}

func TestCanvasDrawsLava(t *testing.T) {
	c := NewCanvas(64, 64)
	sim := lava.New(lava.DefaultParams(), 64, 64, randx.New(2))
	sim.Blobs = sim.Blobs[:1]
	sim.Blobs[0].X, sim.Blobs[0].Y = 32, 32
	sim.Draw(c)
	_, _, _, a := c.Image().At(32, 32).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestSavePNG(t *testing.T) {
	c := NewCanvas(8, 8)
	path := filepath.Join(t.TempDir(), "out", "frame.png")
	require.NoError(t, c.SavePNG(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestSVGWritesOnePolylinePerLine(t *testing.T) {
	s := geometry.Surface{Throat: 30, DepthMin: -150, DepthMax: 150, Longitudes: 4, Depths: 3}
	m := mesh.New(s, noise.Jitter{})
	final := reveal.Final(m.Limits())

	var buf bytes.Buffer
	out := NewSVG(&buf, Projector{Width: 400, Height: 400, Tilt: math32.Pi / 4, Distance: 600, Fovy: 45},
		color.NRGBA{A: 255}, color.NRGBA{R: 10, G: 50, B: 110, A: 200}, 1.5)
	m.Render(out, final)
	out.Close()

	doc := buf.String()
	assert.Equal(t, len(m.Lines(final)), strings.Count(doc, "<polyline"))
	assert.Contains(t, doc, "stroke:rgb(10,50,110)")
	assert.Contains(t, doc, "</svg>")
}

func TestSVGSkipsSinglePoints(t *testing.T) {
	var buf bytes.Buffer
	out := NewSVG(&buf, proj, color.NRGBA{}, color.NRGBA{}, 1)
	out.BeginShape()
	out.Vertex(geometry.Point3{})
	out.EndShape()
	out.Close()
	assert.NotContains(t, buf.String(), "<polyline")
}
