// Package geometry samples the hyperbolic-throat surface the wormhole mesh is drawn on.
package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point3 is a point in render space. Y is the throat axis; X and Z span the sweep plane.
type Point3 struct {
	X, Y, Z float32
}

// Offset returns p with d added to every coordinate.
func (p Point3) Offset(d float32) Point3 {
	return Point3{X: p.X + d, Y: p.Y + d, Z: p.Z + d}
}

// Surface is a hyperbolic-throat surface sampled on a (longitude, depth) lattice.
// Longitudes indexes 0..Longitudes around the throat, depth indexes 0..Depths along it.
type Surface struct {
	Throat     float32 // radius at z=0 (A)
	DepthMin   float32
	DepthMax   float32
	Longitudes int // L: circumferential subdivisions
	Depths     int // D: longitudinal subdivisions
}

// DefaultSurface matches the wormhole sketch: throat 30, depth -150..150,
// 21 longitudinal lines and 31 circumferential lines.
func DefaultSurface() Surface {
	return Surface{
		Throat:     30,
		DepthMin:   -150,
		DepthMax:   150,
		Longitudes: 20,
		Depths:     30,
	}
}

// Validate reports a surface that cannot be sampled.
func (s Surface) Validate() error {
	if s.Longitudes < 1 {
		return fmt.Errorf("longitudes must be >= 1, got %d", s.Longitudes)
	}
	if s.Depths < 1 {
		return fmt.Errorf("depths must be >= 1, got %d", s.Depths)
	}
	if s.Throat <= 0 {
		return fmt.Errorf("throat radius must be > 0, got %g", s.Throat)
	}
	if s.DepthMin >= s.DepthMax {
		return fmt.Errorf("depth range is empty: [%g, %g]", s.DepthMin, s.DepthMax)
	}
	return nil
}

// Radius is sqrt(A² + z²). It is never smaller than the throat and is symmetric in z.
func (s Surface) Radius(z float32) float32 {
	return math32.Sqrt(s.Throat*s.Throat + z*z)
}

// Longitude returns the angle of longitude index i, 0 at i=0 and 2π at i=Longitudes.
func (s Surface) Longitude(i int) float32 {
	return remap(float32(i), 0, float32(s.Longitudes), 0, 2*math32.Pi)
}

// Depth returns the depth of index j, DepthMin at j=0 and DepthMax at j=Depths.
func (s Surface) Depth(j int) float32 {
	return remap(float32(j), 0, float32(s.Depths), s.DepthMin, s.DepthMax)
}

// Point returns the lattice point at longitude i and depth j.
func (s Surface) Point(i, j int) Point3 {
	z := s.Depth(j)
	return ToCartesian(s.Radius(z), s.Longitude(i), z)
}

// ToCartesian maps cylindrical (r, phi, z) to render space. Depth goes on Y so the throat
// opens along the viewer's vertical axis before the scene tilt is applied.
func ToCartesian(r, phi, z float32) Point3 {
	return Point3{
		X: r * math32.Cos(phi),
		Y: z,
		Z: r * math32.Sin(phi),
	}
}

// remap linearly maps v from [a0,a1] to [b0,b1].
func remap(v, a0, a1, b0, b1 float32) float32 {
	return b0 + (b1-b0)*((v-a0)/(a1-a0))
}
