package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "navcube")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(3, 1, color.RGBA{R: 255, A: 255})

	path, err := sc.Capture(img)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "navcube_2024-03-01_12-30-00.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, img.Bounds(), decoded.Bounds())
	r, _, _, _ := decoded.At(3, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestSavePNGBadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := SavePNG(filepath.Join(blocker, "out.png"), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}
