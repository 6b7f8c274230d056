package wormhole

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchlab/internal/geometry"
	"sketchlab/internal/logger"
	"sketchlab/internal/mesh"
	"sketchlab/internal/noise"
	"sketchlab/internal/reveal"
)

type counter struct {
	shapes, vertices int
}

func (c *counter) BeginShape() { c.shapes++ }

func (c *counter) Vertex(geometry.Point3) { c.vertices++ }

func (c *counter) EndShape() {}

func tinySketch(log *slog.Logger) *Sketch {
	s := geometry.Surface{Throat: 30, DepthMin: -150, DepthMax: 150, Longitudes: 2, Depths: 2}
	return New(mesh.New(s, noise.Jitter{}), log)
}

func TestTickDrawsThenAdvances(t *testing.T) {
	sk := tinySketch(nil)
	c := &counter{}
	sk.Tick(c)
	// The first frame shows the start state: one line with a single vertex.
	assert.Equal(t, 1, c.shapes)
	assert.Equal(t, 1, c.vertices)
	assert.Equal(t, reveal.State{Phase: reveal.Longitudinal, Segment: 1}, sk.State())
	assert.Equal(t, uint64(1), sk.Ticks())
}

func TestTickRunsToCompletionAndFreezes(t *testing.T) {
	log := logger.New("", slog.LevelInfo)
	sk := tinySketch(log.Logger)
	lim := sk.Mesh.Limits()
	for i := 0; i < lim.TotalTicks(); i++ {
		require.False(t, sk.Done(), "done early at tick %d", i)
		sk.Tick(&counter{})
	}
	require.True(t, sk.Done())
	assert.Equal(t, reveal.Final(lim), sk.State())

	c := &counter{}
	sk.Tick(c)
	assert.Equal(t, reveal.Final(lim), sk.State())
	assert.Equal(t, (lim.Longitudes+1)+(lim.Depths+1), c.shapes)

	lines := log.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "longitudinal lines drawn tick=9 next=circumferential")
	assert.Contains(t, lines[1], "wormhole complete tick=18 vertices=18")
}

func TestStatus(t *testing.T) {
	sk := tinySketch(nil)
	assert.Equal(t, "longitudinal line=0 seg=0    0%", sk.Status())
	for i := 0; i < 9; i++ {
		sk.Tick(&counter{})
	}
	assert.Equal(t, "circumferential line=0 seg=0   50%", sk.Status())
}
