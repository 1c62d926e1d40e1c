package framebuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipRows(t *testing.T) {
	// 1x3 bottom-up: red, green, blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
	}
	img := FlipRows(pixels, 1, 3)

	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).B, "top row is the last GL row")
	assert.Equal(t, uint8(255), img.RGBAAt(0, 1).G)
	assert.Equal(t, uint8(255), img.RGBAAt(0, 2).R, "bottom row is the first GL row")
}
