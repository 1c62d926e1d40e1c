package viewer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/navcube/internal/config"
	"github.com/Faultbox/navcube/internal/engine/camera"
	"github.com/Faultbox/navcube/internal/navcube"
	"github.com/Faultbox/navcube/internal/navcube/cube"
	"github.com/Faultbox/navcube/pkg/math"
)

func TestWidgetRect(t *testing.T) {
	x, y := widgetRect(1280, 160, 8)
	assert.Equal(t, 1112, x)
	assert.Equal(t, 8, y)

	assert.True(t, inRect(1112, 8, x, y, 160))
	assert.True(t, inRect(1271, 167, x, y, 160))
	assert.False(t, inRect(1272, 100, x, y, 160))
	assert.False(t, inRect(1200, 7, x, y, 160))
}

func TestNewWidgetFromConfig(t *testing.T) {
	cfg := config.Default().NavCube
	cfg.Labels = false
	cfg.Size = 120

	host := camera.NewOrbitCamera()
	host.SetPose(math.Vec3{X: 0, Y: -6, Z: 0.5}, math.Vec3{}, math.AxisZ)

	w, err := NewWidget(cfg, host, nil)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, 120, w.Scene().Width)
	assert.Equal(t, cfg.Chamfer, w.Scene().Cube.Chamfer())

	face, ok := w.Scene().Cube.Facet(cube.Front)
	require.True(t, ok)
	assert.Nil(t, face.Material.Texture, "labels disabled")
	assert.Equal(t, cfg.FaceColor.RGBA(), face.Material.Color)

	cmd, err := w.Home()
	require.NoError(t, err)
	assert.InDelta(t, 6.0208, float64(cmd.Position.Length()), 1e-3, "home keeps the orbit distance")
}

func TestNewWidgetRejectsChamfer(t *testing.T) {
	cfg := config.Default().NavCube
	cfg.Chamfer = 0.9

	_, err := NewWidget(cfg, camera.NewOrbitCamera(), nil)
	assert.ErrorIs(t, err, cube.ErrChamferRange)
}

func TestSnapshot(t *testing.T) {
	cfg := config.Default()
	cfg.NavCube.Size = 96
	path := filepath.Join(t.TempDir(), "out", "cube.png")

	require.NoError(t, Snapshot(cfg, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())

	// Cube in the middle, transparent corner
	_, _, _, a := img.At(48, 48).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestNewWidgetRendersFirstFrame(t *testing.T) {
	cfg := config.Default().NavCube
	cfg.Labels = false
	w, err := NewWidget(cfg, camera.NewOrbitCamera(), nil)
	require.NoError(t, err)
	defer w.Close()
	assert.EqualValues(t, 1, w.Frames())
	assert.IsType(t, &navcube.Scene{}, w.Scene())
}
