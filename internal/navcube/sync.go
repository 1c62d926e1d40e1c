package navcube

import (
	"go.uber.org/zap"

	"github.com/Faultbox/navcube/pkg/math"
)

// Tick compares the host camera with the last applied orientation and, if
// the view changed, re-poses the local camera and renders one frame. It
// reports whether a frame was rendered.
func (w *Widget) Tick() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	return w.syncLocked()
}

func (w *Widget) syncLocked() bool {
	pose := w.cam.Pose()
	q := pose.Orientation.Normalize()
	forward := q.Forward()
	up := q.Up()

	if !forward.IsFinite() || forward.Length() < 0.5 {
		w.log.Debug("skipping sync, camera orientation undefined", zap.Any("orientation", pose.Orientation))
		return false
	}

	if w.synced && forward.Dot(w.lastForward) >= SyncThreshold && up.Dot(w.lastUp) >= SyncThreshold {
		return false
	}

	// Same rotation as the host, backed off to the orbit radius
	local := w.scene.Camera
	local.Orientation = q
	local.Position = forward.Scale(-w.radius)
	if pose.Up != (math.Vec3{}) {
		local.Up = pose.Up
	}

	if err := w.renderer.Render(w.scene); err != nil {
		w.log.Error("navcube render failed", zap.Error(err))
		return false
	}

	w.synced = true
	w.lastForward = forward
	w.lastUp = up
	w.frames++
	w.log.Debug("navcube resynced",
		zap.Float32("fx", forward.X), zap.Float32("fy", forward.Y), zap.Float32("fz", forward.Z))
	return true
}
