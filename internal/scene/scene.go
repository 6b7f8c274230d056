package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sketchlab/internal/geometry"
)

const (
	orbitSensitivity = 0.005 // radians per pixel dragged
	zoomStep         = 0.1   // fraction of distance per wheel notch
	minDistance      = 50
	maxDistance      = 3000
	maxPitch         = math32.Pi/2 - 0.01
)

// Scene holds the orbit camera and draws polylines in 3D. It implements mesh.Surface:
// BeginShape/Vertex/EndShape become DrawLine3D calls between consecutive vertices.
// Shapes must be emitted between Begin and End.
type Scene struct {
	Camera rl.Camera3D
	Stroke rl.Color
	Weight float32
	// Tilt is applied to everything drawn, in degrees about X.
	Tilt   float32

	yaw, pitch, distance float32

	last    rl.Vector3
	hasLast bool
}

// New returns a scene with a perspective camera on +Z looking at the origin from distance.
func New(distance, tiltDegrees float32, stroke rl.Color, weight float32) *Scene {
	s := &Scene{
		Stroke:   stroke,
		Weight:   weight,
		Tilt:     tiltDegrees,
		distance: distance,
	}
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.placeCamera()
	return s
}

// Update runs once per frame: dragging with the left button orbits the camera around the
// origin and the wheel zooms. Nothing else reacts to input.
func (s *Scene) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		s.yaw -= d.X * orbitSensitivity
		s.pitch += d.Y * orbitSensitivity
		s.pitch = min(max(s.pitch, -maxPitch), maxPitch)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.distance *= 1 - wheel*zoomStep
		s.distance = min(max(s.distance, minDistance), maxDistance)
	}
	s.placeCamera()
}

// placeCamera puts the camera on its orbit sphere.
func (s *Scene) placeCamera() {
	cp := math32.Cos(s.pitch)
	s.Camera.Position = rl.NewVector3(
		s.distance*cp*math32.Sin(s.yaw),
		s.distance*math32.Sin(s.pitch),
		s.distance*cp*math32.Cos(s.yaw),
	)
}

// Begin enters 3D mode with the tilt applied. Call after ClearBackground.
func (s *Scene) Begin() {
	rl.BeginMode3D(s.Camera)
	rl.PushMatrix()
	rl.Rotatef(s.Tilt, 1, 0, 0)
	rl.SetLineWidth(s.Weight)
}

// End leaves 3D mode.
func (s *Scene) End() {
	rl.PopMatrix()
	rl.EndMode3D()
}

// BeginShape starts a new polyline; implements mesh.Surface.
func (s *Scene) BeginShape() {
	s.hasLast = false
}

// Vertex draws a line from the previous vertex of the shape to p.
func (s *Scene) Vertex(p geometry.Point3) {
	v := rl.NewVector3(p.X, p.Y, p.Z)
	if s.hasLast {
		rl.DrawLine3D(s.last, v, s.Stroke)
	}
	s.last = v
	s.hasLast = true
}

// EndShape ends the current polyline.
func (s *Scene) EndShape() {
	s.hasLast = false
}
