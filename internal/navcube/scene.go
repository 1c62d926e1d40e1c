package navcube

import (
	"image/color"

	"github.com/Faultbox/navcube/internal/engine/camera"
	"github.com/Faultbox/navcube/internal/engine/lighting"
	"github.com/Faultbox/navcube/internal/navcube/cube"
	"github.com/Faultbox/navcube/pkg/math"
)

// Local camera settings.
const (
	FieldOfView = 45  // degrees
	NearPlane   = 0.1 // world units
	farMargin   = 2
)

// Scene is everything a Renderer needs for one widget frame.
type Scene struct {
	Cube   *cube.Cube
	Lights lighting.Rig
	Camera *camera.PerspectiveCamera
	Clear  color.RGBA // Transparent so the host view shows through

	Width, Height int
}

// NewScene wraps cb with the widget lighting and a local camera sized for a
// width x height surface. The camera far plane brackets the cube from radius.
func NewScene(cb *cube.Cube, width, height int, radius float32, up math.Vec3) *Scene {
	cam := camera.NewPerspectiveCamera(FieldOfView, float32(width)/float32(height), NearPlane, radius+farMargin)
	if up != (math.Vec3{}) {
		cam.Up = up
	}
	cam.SetPose(math.Vec3{Y: -radius}, math.Vec3{}, cam.Up)

	return &Scene{
		Cube:   cb,
		Lights: lighting.DefaultRig(-60, 50),
		Camera: cam,
		Width:  width,
		Height: height,
	}
}
