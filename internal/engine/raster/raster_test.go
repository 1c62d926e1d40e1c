package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/pkg/math"
)

var (
	transparent = color.RGBA{}
	red         = color.RGBA{R: 200, A: 0xff}
	blue        = color.RGBA{B: 200, A: 0xff}
)

// topDown looks at the origin from +Z with +Y up the screen.
func topDown() math.Mat4 {
	view := math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.AxisY)
	proj := math.Perspective(0.8, 1, 0.1, 20)
	return proj.Mul(view)
}

func quadAt(z, half float32) *model.Mesh {
	return model.BuildMesh(model.Polygon{
		Points: []math.Vec3{
			{X: -half, Y: -half, Z: z},
			{X: half, Y: -half, Z: z},
			{X: half, Y: half, Z: z},
			{X: -half, Y: half, Z: z},
		},
		TexCoords: []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	})
}

func TestDrawMeshFillsCenter(t *testing.T) {
	r := New(64, 64)
	r.Begin(topDown(), transparent)
	r.DrawMesh(quadAt(0, 1), red, nil, nil)

	img := r.Image()
	assert.Equal(t, red, img.RGBAAt(32, 32))
	assert.Equal(t, transparent, img.RGBAAt(0, 0))
}

func TestDrawMeshCullsBackFaces(t *testing.T) {
	flipped := model.BuildMesh(model.Polygon{Points: []math.Vec3{
		{X: -1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
	}})

	r := New(32, 32)
	r.Begin(topDown(), transparent)
	r.DrawMesh(flipped, red, nil, nil)
	assert.Equal(t, transparent, r.Image().RGBAAt(16, 16))
}

func TestDepthOrderIndependent(t *testing.T) {
	near := quadAt(1, 0.5)
	far := quadAt(0, 1)

	for _, order := range [][]*model.Mesh{{near, far}, {far, near}} {
		r := New(64, 64)
		r.Begin(topDown(), transparent)
		for _, m := range order {
			col := blue
			if m == near {
				col = red
			}
			r.DrawMesh(m, col, nil, nil)
		}
		assert.Equal(t, red, r.Image().RGBAAt(32, 32))
	}
}

func TestTextureOrientation(t *testing.T) {
	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	tex.SetRGBA(0, 0, red) // Top row
	tex.SetRGBA(1, 0, red)
	tex.SetRGBA(0, 1, blue) // Bottom row
	tex.SetRGBA(1, 1, blue)

	assert.Equal(t, red, Sample(tex, 0.5, 0.9))
	assert.Equal(t, blue, Sample(tex, 0.5, 0.1))
	assert.Equal(t, red, Sample(tex, 1, 1), "edges clamp")

	r := New(64, 64)
	r.Begin(topDown(), transparent)
	r.DrawMesh(quadAt(0, 1), color.RGBA{}, tex, nil)
	img := r.Image()
	assert.Equal(t, red, img.RGBAAt(32, 24), "upper half of screen is v > 0.5")
	assert.Equal(t, blue, img.RGBAAt(32, 40))
}

func TestDrawLineLoopDepthTested(t *testing.T) {
	r := New(64, 64)
	r.Begin(topDown(), transparent)
	r.DrawMesh(quadAt(1, 0.5), red, nil, nil)

	// Hidden below the quad
	r.DrawLineLoop([]math.Vec3{{X: -0.2, Z: 0}, {X: 0.2, Z: 0}}, blue)
	assert.Equal(t, red, r.Image().RGBAAt(32, 32))

	// On top of the quad
	r.DrawLineLoop([]math.Vec3{{X: -0.2, Z: 1}, {X: 0.2, Z: 1}}, blue)
	assert.Equal(t, blue, r.Image().RGBAAt(32, 32))
}
