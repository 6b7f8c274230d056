package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldRangeAndDeterminism(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	a := New(opts)
	b := New(opts)
	for i := 0; i < 50; i++ {
		x := float32(i) * 0.37
		y := float32(i) * 0.11
		v := a.At(x, y)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
		assert.Equal(t, v, a.At(x, y))
		assert.Equal(t, v, b.At(x, y))
	}
}

func TestFieldIsCoherent(t *testing.T) {
	f := New(Options{Seed: 7, Octaves: 1})
	// Neighboring samples on a single octave differ by far less than the full range.
	for i := 0; i < 20; i++ {
		x := float32(i) * 0.5
		assert.InDelta(t, f.At(x, 1), f.At(x+0.01, 1), 0.05)
	}
}

func TestFieldAtLatticeCornerIsHash(t *testing.T) {
	f := New(Options{Seed: 3, Octaves: 1})
	assert.Equal(t, hash2D(2, 5, f.seed), f.At(2, 5))
}

func TestJitter(t *testing.T) {
	f := New(Options{Seed: 9})
	j := Jitter{Field: f, Step: 0.5, Scale: 2}
	assert.Equal(t, f.At(1.5, 3.5)*2, j.At(3, 7))
	for a := 0; a < 10; a++ {
		v := j.At(a, 10-a)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(2))
	}
	assert.Equal(t, float32(0), Jitter{}.At(1, 2))
}

func TestSmoothStep(t *testing.T) {
	assert.Equal(t, float32(0), smoothStep(-1))
	assert.Equal(t, float32(1), smoothStep(2))
	assert.Equal(t, float32(0.5), smoothStep(0.5))
}
