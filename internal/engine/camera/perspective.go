package camera

import (
	gomath "math"

	"github.com/Faultbox/navcube/pkg/math"
)

// PerspectiveCamera is a free camera described by a position and an
// orientation quaternion.
type PerspectiveCamera struct {
	Position    math.Vec3
	Orientation math.Quat
	Up          math.Vec3 // World up hint for LookAt

	FovY   float32 // Vertical field of view (radians)
	Aspect float32 // Width / height
	Near   float32
	Far    float32
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
// fovDegrees is the vertical field of view.
func NewPerspectiveCamera(fovDegrees, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		Orientation: math.QuatIdentity(),
		Up:          math.AxisY,
		FovY:        fovDegrees * gomath.Pi / 180,
		Aspect:      aspect,
		Near:        near,
		Far:         far,
	}
}

// LookAt rotates the camera to face target, keeping Up as the up hint.
func (c *PerspectiveCamera) LookAt(target math.Vec3) {
	c.Orientation = math.LookRotation(target.Sub(c.Position), c.Up)
}

// Forward returns the viewing direction.
func (c *PerspectiveCamera) Forward() math.Vec3 {
	return c.Orientation.Forward()
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), c.Orientation.Up())
}

// ProjectionMatrix returns the perspective projection.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Project maps a world point to normalized device coordinates.
func (c *PerspectiveCamera) Project(p math.Vec3) math.Vec3 {
	return c.ViewProjection().TransformVec3(p)
}

// Pose returns the camera's current placement.
func (c *PerspectiveCamera) Pose() Pose {
	return Pose{Position: c.Position, Orientation: c.Orientation, Up: c.Up}
}

// SetPose moves the camera to position, aims it at target and adopts up as
// the new up hint.
func (c *PerspectiveCamera) SetPose(position, target, up math.Vec3) {
	c.Position = position
	if up != (math.Vec3{}) {
		c.Up = up
	}
	c.LookAt(target)
}
