// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/navcube/pkg/math"
)

// Pose is a snapshot of a camera's placement.
type Pose struct {
	Position    math.Vec3
	Orientation math.Quat // Camera looks down its local -Z, local +Y is up
	Up          math.Vec3 // World up hint used when re-aiming
}

// Forward returns the viewing direction of the pose.
func (p Pose) Forward() math.Vec3 {
	return p.Orientation.Forward()
}

// OrbitCamera orbits around a center point in a Z-up world.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	Elevation float32 // Angle above the XY plane (radians)
	Azimuth   float32 // Angle around Z measured from +X (radians)

	// Constraints
	MinDistance  float32
	MaxDistance  float32
	MinElevation float32
	MaxElevation float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// Elevation limit just short of the poles so the view matrix stays defined.
const poleMargin = 1e-4

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        5.0,
		Elevation:       0.5,
		Azimuth:         0.0,
		MinDistance:     1.0,
		MaxDistance:     800.0,
		MinElevation:    -gomath.Pi/2 + poleMargin,
		MaxElevation:    gomath.Pi/2 - poleMargin,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cosEl := gomath.Cos(float64(c.Elevation))
	x := c.Distance * float32(cosEl*gomath.Cos(float64(c.Azimuth)))
	y := c.Distance * float32(cosEl*gomath.Sin(float64(c.Azimuth)))
	z := c.Distance * float32(gomath.Sin(float64(c.Elevation)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.AxisZ)
}

// Pose returns the camera's current placement.
func (c *OrbitCamera) Pose() Pose {
	pos := c.Position()
	return Pose{
		Position:    pos,
		Orientation: math.LookRotation(c.Center.Sub(pos), math.AxisZ),
		Up:          math.AxisZ,
	}
}

// SetPose moves the camera to position and aims it at target. The orbit is
// always Z-up, so the up hint is ignored.
func (c *OrbitCamera) SetPose(position, target, _ math.Vec3) {
	offset := position.Sub(target)
	dist := offset.Length()
	if dist == 0 {
		return
	}

	c.Center = target
	c.Distance = dist
	c.Elevation = float32(gomath.Asin(float64(offset.Z / dist)))
	c.Azimuth = float32(gomath.Atan2(float64(offset.Y), float64(offset.X)))
	c.clamp()
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Azimuth -= deltaX * c.DragSensitivity
	c.Elevation += deltaY * c.DragSensitivity
	c.clamp()
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	if c.Elevation < c.MinElevation {
		c.Elevation = c.MinElevation
	}
	if c.Elevation > c.MaxElevation {
		c.Elevation = c.MaxElevation
	}
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
