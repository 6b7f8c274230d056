package scene

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestNewPlacesCameraOnZ(t *testing.T) {
	s := New(600, 45, rl.White, 1.5)
	assert.Equal(t, rl.NewVector3(0, 0, 600), s.Camera.Position)
	assert.Equal(t, rl.NewVector3(0, 1, 0), s.Camera.Up)
	assert.Equal(t, float32(45), s.Tilt)
}

func TestOrbitKeepsDistance(t *testing.T) {
	s := New(500, 0, rl.White, 1)
	s.yaw, s.pitch = 1.2, -0.7
	s.placeCamera()
	p := s.Camera.Position
	assert.InDelta(t, 500, math32.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z), 1e-2)
	assert.Less(t, p.Y, float32(0))
}
