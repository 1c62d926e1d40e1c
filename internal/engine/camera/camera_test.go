package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/navcube/pkg/math"
)

func TestOrbitCameraSetPoseRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		position math.Vec3
	}{
		{"viewer start", math.Vec3{X: -5, Y: 5, Z: 5}},
		{"front", math.Vec3{X: 0, Y: -3, Z: 0}},
		{"below", math.Vec3{X: 1, Y: 2, Z: -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.SetPose(tt.position, math.Vec3{}, math.AxisZ)

			got := c.Position()
			if !got.ApproxEqual(tt.position, 1e-4) {
				t.Errorf("Position() = %v, want %v", got, tt.position)
			}
		})
	}
}

func TestOrbitCameraPoseLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.SetPose(math.Vec3{X: 5, Y: 5, Z: 5}, math.Vec3{}, math.AxisZ)

	pose := c.Pose()
	want := math.Vec3{X: -1, Y: -1, Z: -1}.Normalize()
	if !pose.Forward().ApproxEqual(want, 1e-4) {
		t.Errorf("Forward() = %v, want %v", pose.Forward(), want)
	}
	if pose.Up != math.AxisZ {
		t.Errorf("Up = %v, want +Z", pose.Up)
	}
}

func TestOrbitCameraClampsElevation(t *testing.T) {
	c := NewOrbitCamera()
	c.SetPose(math.Vec3{Z: 5}, math.Vec3{}, math.AxisZ)

	if c.Elevation > c.MaxElevation {
		t.Errorf("elevation %v exceeds max %v", c.Elevation, c.MaxElevation)
	}
	if !c.Pose().Forward().IsFinite() {
		t.Error("pose at the pole should stay finite")
	}
}

func TestOrbitCameraHandleZoom(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.HandleZoom(1)
	if c.Distance != 9 {
		t.Errorf("expected distance 9 after zoom in, got %v", c.Distance)
	}

	c.HandleZoom(-1e6)
	if c.Distance != c.MaxDistance {
		t.Errorf("expected distance clamped to %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestPerspectiveCameraProjectCenter(t *testing.T) {
	c := NewPerspectiveCamera(45, 1, 0.1, 10)
	c.Up = math.AxisZ
	c.SetPose(math.Vec3{Y: -3}, math.Vec3{}, math.AxisZ)

	ndc := c.Project(math.Vec3{})
	if gomath.Abs(float64(ndc.X)) > 1e-5 || gomath.Abs(float64(ndc.Y)) > 1e-5 {
		t.Errorf("target should project to the center, got %v", ndc)
	}

	// +Z is up on screen
	above := c.Project(math.Vec3{Z: 0.5})
	if above.Y <= 0 {
		t.Errorf("point above target should project above center, got %v", above)
	}
	// +X is to the right when looking along +Y
	right := c.Project(math.Vec3{X: 0.5})
	if right.X <= 0 {
		t.Errorf("point at +X should project right of center, got %v", right)
	}
}

func TestPerspectiveCameraFov(t *testing.T) {
	c := NewPerspectiveCamera(90, 2, 0.1, 10)
	if gomath.Abs(float64(c.FovY)-gomath.Pi/2) > 1e-6 {
		t.Errorf("FovY = %v, want pi/2", c.FovY)
	}
}
