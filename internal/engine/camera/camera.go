// Package camera provides the orbit camera for the terrain viewer.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/terraclip/pkg/clipmap"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FOV  float32 // Vertical field of view, degrees
	Near float32
	Far  float32
}

// NewOrbitCamera creates an orbit camera with viewer defaults.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        120,
		RotationX:       0.7,
		RotationY:       0,
		MinDistance:     5,
		MaxDistance:     20000,
		MinPitch:        0.05,
		MaxPitch:        1.55,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             45,
		Near:            1,
		Far:             50000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sinP := float32(math.Sin(float64(c.RotationX)))
	cosP := float32(math.Cos(float64(c.RotationX)))
	sinY := float32(math.Sin(float64(c.RotationY)))
	cosY := float32(math.Cos(float64(c.RotationY)))

	offset := mgl32.Vec3{
		c.Distance * cosP * sinY,
		c.Distance * sinP,
		c.Distance * cosP * cosY,
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given
// aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandleMovement pans the center point relative to the view direction.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sinY := float32(math.Sin(float64(c.RotationY)))
	cosY := float32(math.Cos(float64(c.RotationY)))

	// W moves "into" the scene, so forward is negated
	c.Center = c.Center.Add(mgl32.Vec3{
		(-sinY*forward + cosY*right) * speed,
		up * speed,
		(-cosY*forward - sinY*right) * speed,
	})
}

// FitToBounds positions the camera to view the given bounding box.
func (c *OrbitCamera) FitToBounds(b clipmap.AABB) {
	c.Center = b.Center()

	size := b.Size.X()
	if b.Size.Z() > size {
		size = b.Size.Z()
	}

	c.Distance = size * 0.8
	if c.Distance < 10 {
		c.Distance = 10
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}

	c.RotationX = 0.6 // Look down at ~35 degrees
	c.RotationY = 0
}
