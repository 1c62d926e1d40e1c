// Package viewer hosts the navigation cube next to a stub model, either in
// an SDL2/OpenGL window or headless for snapshots.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/config"
	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/internal/navcube"
	"github.com/Faultbox/navcube/internal/navcube/label"
	"github.com/Faultbox/navcube/pkg/math"
)

// NewWidget creates the navigation cube described by cfg, bound to cam and
// drawn by r. Labels are painted once here and the painter is released.
func NewWidget(cfg config.NavCubeConfig, cam navcube.CameraPort, r navcube.Renderer) (*navcube.Widget, error) {
	opts := navcube.DefaultOptions()
	opts.Region = navcube.FixedRegion{Width: cfg.Size, Height: cfg.Size}
	opts.Camera = cam
	opts.Renderer = r
	opts.Chamfer = cfg.Chamfer
	opts.Palette = cfg.Palette()
	opts.Radius = cfg.Radius
	opts.Home = math.Vec3From(cfg.Home)
	opts.Logger = logger.Named("navcube")

	if cfg.Labels {
		painter, err := label.NewTextPainter(label.TextOptions{})
		if err != nil {
			// Flat faces still navigate
			opts.Logger.Warn("text labels unavailable", zap.Error(err))
		} else {
			defer painter.Close()
			opts.Decorator = painter
		}
	}

	w, err := navcube.New(opts)
	if err != nil {
		return nil, fmt.Errorf("navcube: %w", err)
	}
	return w, nil
}

// widgetRect returns the top-left corner of a size x size widget placed in
// the top-right corner of a window, margin pixels from the edges.
func widgetRect(winWidth, size, margin int) (x, y int) {
	return winWidth - size - margin, margin
}

// inRect reports whether (px, py) lies in the size x size square at (x, y).
func inRect(px, py, x, y, size int) bool {
	return px >= x && px < x+size && py >= y && py < y+size
}
