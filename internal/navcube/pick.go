package navcube

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/engine/picking"
	"github.com/Faultbox/navcube/internal/navcube/cube"
	"github.com/Faultbox/navcube/pkg/math"
)

// Degenerate look-at handling.
const (
	// PerturbAngle is the rotation applied to a target direction that is
	// parallel to the camera up vector.
	PerturbAngle = 0.001 // radians

	parallelTolerance = 1e-6
)

// Hit is the nearest facet under a widget pixel.
type Hit struct {
	Facet    *cube.Facet
	Sides    cube.Sides
	Point    math.Vec3
	Distance float32
}

// Command is a pose issued to the host camera.
type Command struct {
	Sides    cube.Sides // Zero for Home
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// Pick casts a ray from the local camera through pixel (x, y) of the widget
// and returns the nearest tagged facet. Outlines never take part.
func (w *Widget) Pick(x, y float32) (Hit, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return Hit{}, false
	}
	return w.pickLocked(x, y)
}

func (w *Widget) pickLocked(x, y float32) (Hit, bool) {
	sc := w.scene
	inv := sc.Camera.ViewProjection().Inverse()
	ray := picking.ScreenToRay(x, y, float32(sc.Width), float32(sc.Height), inv)

	var best Hit
	found := false
	for _, f := range sc.Cube.Facets() {
		t, _, ok := ray.IntersectMesh(f.Mesh)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		best = Hit{Facet: f, Sides: f.Sides, Point: ray.At(t), Distance: t}
		found = true
	}

	if !found || best.Sides == 0 {
		return Hit{}, false
	}
	return best, true
}

// Click picks the facet under (x, y) and points the host camera at the cube
// from that facet's side, keeping its distance from the origin. A miss is a
// no-op.
func (w *Widget) Click(x, y float32) (Command, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return Command{}, false
	}

	hit, ok := w.pickLocked(x, y)
	if !ok {
		w.log.Debug("navcube click missed", zap.Float32("x", x), zap.Float32("y", y))
		return Command{}, false
	}

	cmd := w.commandLocked(hit.Facet.Normal)
	cmd.Sides = hit.Sides
	w.cam.SetPose(cmd.Position, cmd.Target, cmd.Up)

	w.log.Debug("navcube facet clicked",
		zap.Stringer("sides", hit.Sides),
		zap.Float32("px", cmd.Position.X),
		zap.Float32("py", cmd.Position.Y),
		zap.Float32("pz", cmd.Position.Z))
	return cmd, true
}

// Home points the host camera along the configured home direction.
func (w *Widget) Home() (Command, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return Command{}, ErrClosed
	}

	cmd := w.commandLocked(w.home)
	w.cam.SetPose(cmd.Position, cmd.Target, cmd.Up)
	w.log.Debug("navcube home")
	return cmd, nil
}

// commandLocked places the camera along dir at its current distance from
// the origin. A dir parallel to the camera up is nudged off axis so the
// look-at stays defined.
func (w *Widget) commandLocked(dir math.Vec3) Command {
	pose := w.cam.Pose()

	dist := pose.Position.Length()
	if dist == 0 || !pose.Position.IsFinite() {
		dist = w.radius
	}

	up := pose.Up
	if up.Length() == 0 {
		up = pose.Orientation.Up()
	}

	dir = Perturb(dir.Normalize(), up.Normalize())
	return Command{
		Position: dir.Scale(dist),
		Target:   math.Vec3{},
		Up:       up,
	}
}

// Perturb returns dir rotated by PerturbAngle when it is parallel or
// anti-parallel to up, and dir unchanged otherwise. The rotation axis is +X,
// or +Y when dir itself lies along X.
func Perturb(dir, up math.Vec3) math.Vec3 {
	if gomath.Abs(float64(dir.Dot(up))) < 1-parallelTolerance {
		return dir
	}
	axis := math.AxisX
	if gomath.Abs(float64(dir.X)) > 0.9 {
		axis = math.AxisY
	}
	return dir.RotateAxis(axis, PerturbAngle)
}
