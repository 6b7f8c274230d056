package noise

import (
	"time"

	"github.com/chewxy/math32"
)

// Options controls the fractal value noise shape.
// Seed == 0 picks a time-based seed, so the field differs between runs but stays stable within one.
type Options struct {
	Seed       int64
	Octaves    int
	Gain       float32 // amplitude falloff per octave
	Lacunarity float32
}

// DefaultOptions returns four octaves with half falloff, the same shape as Processing/p5 noise().
func DefaultOptions() Options {
	return Options{
		Seed:       0,
		Octaves:    4,
		Gain:       0.5,
		Lacunarity: 2.0,
	}
}

// Field is a coherent 2D noise field. At returns values in [0,1] and is deterministic for a Field.
type Field struct {
	seed       int32
	octaves    int
	gain       float32
	lacunarity float32
}

// New returns a field for opts, filling in defaults for zero or negative values.
func New(opts Options) *Field {
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Field{
		seed:       int32(seed ^ seed>>32),
		octaves:    opts.Octaves,
		gain:       opts.Gain,
		lacunarity: opts.Lacunarity,
	}
}

// At samples the field at (x, y).
func (f *Field) At(x, y float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32
	freq := float32(1)

	for i := 0; i < f.octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, f.seed+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= f.gain
		freq *= f.lacunarity
	}
	return sum / maxAmp
}

// Jitter turns lattice indexes into a small coherent offset: Field.At(a*Step, b*Step) * Scale.
type Jitter struct {
	Field *Field
	Step  float32
	Scale float32
}

// At returns the jitter for the index pair (a, b). A nil Field yields no jitter.
func (j Jitter) At(a, b int) float32 {
	if j.Field == nil {
		return 0
	}
	return j.Field.At(float32(a)*j.Step, float32(b)*j.Step) * j.Scale
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps a lattice corner to a pseudo-random value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing 3t² - 2t³, clamped to [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
