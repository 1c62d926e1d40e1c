package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/config"
	"github.com/Faultbox/navcube/internal/engine/camera"
	"github.com/Faultbox/navcube/internal/engine/debug"
	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/internal/navcube"
	"github.com/Faultbox/navcube/pkg/math"
)

// Snapshot renders the widget as seen from the configured host camera
// position on the CPU and writes it to path as PNG. No window or GL
// context is needed.
func Snapshot(cfg *config.Config, path string) error {
	host := camera.NewPerspectiveCamera(navcube.FieldOfView, float32(cfg.Window.Width)/float32(cfg.Window.Height), 0.1, 1000)
	host.SetPose(math.Vec3From(cfg.Scene.CameraPos), math.Vec3{}, math.AxisZ)

	surface := navcube.NewSoftwareSurface(cfg.NavCube.Size, cfg.NavCube.Size)
	w, err := NewWidget(cfg.NavCube, host, surface)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := debug.SavePNG(path, surface.Image()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	logger.Info("snapshot written",
		zap.String("path", path),
		zap.Int("size", cfg.NavCube.Size),
		zap.Uint64("frames", w.Frames()))
	return nil
}
