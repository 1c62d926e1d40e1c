package navcube

import (
	"github.com/Faultbox/navcube/internal/engine/camera"
	"github.com/Faultbox/navcube/pkg/math"
)

// Region is the host display area the widget draws into. Click coordinates
// are pixel offsets from its top-left corner.
type Region interface {
	Size() (width, height int)
}

// FixedRegion is a Region of constant size.
type FixedRegion struct {
	Width, Height int
}

// Size implements Region.
func (r FixedRegion) Size() (int, int) {
	return r.Width, r.Height
}

// CameraPort is the widget's view of the host camera: read the pose every
// tick, command a new one on click.
type CameraPort interface {
	Pose() camera.Pose
	SetPose(position, target, up math.Vec3)
}

// Renderer draws a scene onto the widget surface.
type Renderer interface {
	Render(s *Scene) error
	Close() error
}
