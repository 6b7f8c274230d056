package lava

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchlab/internal/randx"
)

func TestBlobRespawnsBelowScreen(t *testing.T) {
	p := DefaultParams()
	r := randx.New(3)
	const w, h = 800, 600
	b := Blob{X: 10, Size: 60, Speed: 2, Offset: 1}
	b.Y = -b.Size - 1

	require.True(t, b.Update(p, r, w, h))
	assert.Equal(t, float32(h+50), b.Y)
	assert.True(t, p.Size.Contains(b.Size), "size %g", b.Size)
	assert.True(t, p.Speed.Contains(b.Speed), "speed %g", b.Speed)
	assert.True(t, p.Offset.Contains(b.Offset), "offset %g", b.Offset)
	assert.True(t, p.Red.Contains(float32(b.Color.R)))
	assert.True(t, p.Green.Contains(float32(b.Color.G)))
	assert.True(t, p.Blue.Contains(float32(b.Color.B)))
	assert.Equal(t, uint8(255), b.Color.A)
	assert.GreaterOrEqual(t, b.X, float32(0))
	assert.Less(t, b.X, float32(w))
}

func TestBlobResetSamplesInOrder(t *testing.T) {
	p := DefaultParams()
	r := &randx.Sequence{Values: []float64{0.5, 0, 0.5, 0, 1.0 / 3, 0, 0.25}}
	var b Blob
	b.Reset(p, r, 200, 100)
	assert.Equal(t, Blob{
		X:      100,
		Y:      150,
		Size:   40,
		Speed:  2,
		Color:  color.NRGBA{R: 100, G: 33, B: 100, A: 255},
		Offset: 250,
	}, b)
}

func TestBlobRisesAndSways(t *testing.T) {
	p := DefaultParams()
	b := Blob{X: 100, Y: 300, Size: 50, Speed: 2, Offset: 0.5}
	assert.False(t, b.Update(p, &randx.Sequence{}, 800, 600))
	assert.Equal(t, float32(298), b.Y)
	assert.InDelta(t, 100+math32.Sin(298*0.01+0.5), b.X, 1e-5)
}

func TestBlobDriftIsNotClamped(t *testing.T) {
	p := DefaultParams()
	b := Blob{X: -500, Y: 300, Size: 50, Speed: 0, Offset: math32.Pi / 2}
	for i := 0; i < 10; i++ {
		b.Update(p, &randx.Sequence{}, 800, 600)
	}
	assert.Less(t, b.X, float32(-500))
}

func TestNewSpreadsBlobs(t *testing.T) {
	p := DefaultParams()
	s := New(p, 640, 480, randx.New(11))
	require.Len(t, s.Blobs, 15)
	for _, b := range s.Blobs {
		assert.GreaterOrEqual(t, b.Y, float32(0))
		assert.Less(t, b.Y, float32(480))
	}
}

func TestResizeKeepsBlobs(t *testing.T) {
	s := New(DefaultParams(), 640, 480, randx.New(5))
	before := append([]Blob(nil), s.Blobs...)
	s.Resize(1280, 960)
	assert.Equal(t, before, s.Blobs)
	assert.Equal(t, float32(1280), s.Width)

	// Respawns use the new bounds.
	s.Blobs[0].Y = -1000
	s.Update()
	assert.Equal(t, float32(960+50), s.Blobs[0].Y)
}

type recCanvas struct {
	ops []string
}

func (c *recCanvas) Fade(color.NRGBA) { c.ops = append(c.ops, "fade") }

func (c *recCanvas) Circle(_, _, _ float32, _ color.NRGBA) { c.ops = append(c.ops, "circle") }

func TestDrawFadesFirst(t *testing.T) {
	s := New(Params{Blobs: 2, Size: Span{10, 10}, Speed: Span{1, 1}}, 100, 100, randx.New(1))
	c := &recCanvas{}
	s.Draw(c)
	assert.Equal(t, []string{"fade", "circle", "circle"}, c.ops)
}
