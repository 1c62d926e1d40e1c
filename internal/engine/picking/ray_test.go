package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/pkg/math"
)

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float32
		wantX, wantY float32
	}{
		{"center", 50, 50, 0, 0},
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 100, 100, 1, -1},
		{"quarter", 25, 75, -0.5, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ScreenToNDC(tt.x, tt.y, 100, 100)
			assert.InDelta(t, tt.wantX, x, 1e-6)
			assert.InDelta(t, tt.wantY, y, 1e-6)
		})
	}
}

func TestNDCToRayCenter(t *testing.T) {
	eye := math.Vec3{X: 0, Y: -4, Z: 0}
	view := math.LookAt(eye, math.Vec3{}, math.AxisZ)
	proj := math.Perspective(0.8, 1, 0.1, 10)
	inv := proj.Mul(view).Inverse()

	ray := NDCToRay(0, 0, inv)

	assert.True(t, ray.Direction.ApproxEqual(math.AxisY, 1e-4), "direction %v", ray.Direction)
	assert.InDelta(t, 0, ray.Origin.X, 1e-4)
	assert.InDelta(t, 0, ray.Origin.Z, 1e-4)
	assert.InDelta(t, -3.9, ray.Origin.Y, 1e-3, "ray should start at the near plane")
}

func TestIntersectTriangle(t *testing.T) {
	a := math.Vec3{X: -1, Y: -1, Z: 0}
	b := math.Vec3{X: 1, Y: -1, Z: 0}
	c := math.Vec3{X: 0, Y: 1, Z: 0}

	tests := []struct {
		name    string
		ray     Ray
		wantHit bool
		wantT   float32
	}{
		{"from above", Ray{math.Vec3{Z: 3}, math.Vec3{Z: -1}}, true, 3},
		{"from below", Ray{math.Vec3{Z: -2}, math.Vec3{Z: 1}}, true, 2},
		{"outside", Ray{math.Vec3{X: 2, Z: 3}, math.Vec3{Z: -1}}, false, 0},
		{"behind origin", Ray{math.Vec3{Z: 3}, math.Vec3{Z: 1}}, false, 0},
		{"parallel", Ray{math.Vec3{Z: 1}, math.Vec3{X: 1}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, hit := tt.ray.IntersectTriangle(a, b, c)
			require.Equal(t, tt.wantHit, hit)
			if hit {
				assert.InDelta(t, tt.wantT, d, 1e-5)
			}
		})
	}
}

func TestIntersectMeshNearest(t *testing.T) {
	box := model.Box(1, 1, 1)
	ray := Ray{Origin: math.Vec3{X: 0.1, Y: 0.2, Z: 5}, Direction: math.Vec3{Z: -1}}

	d, tri, hit := ray.IntersectMesh(box)
	require.True(t, hit)
	assert.InDelta(t, 4.5, d, 1e-5, "nearest face is the top at z=0.5")

	normal := math.Vec3From(box.Triangle(tri)[0].Normal)
	assert.True(t, normal.ApproxEqual(math.AxisZ, 1e-6), "hit triangle normal %v", normal)
}

func TestIntersectMeshMiss(t *testing.T) {
	box := model.Box(1, 1, 1)
	ray := Ray{Origin: math.Vec3{X: 3, Z: 5}, Direction: math.Vec3{Z: -1}}

	_, tri, hit := ray.IntersectMesh(box)
	assert.False(t, hit)
	assert.Equal(t, -1, tri)

	_, _, hit = ray.IntersectMesh(nil)
	assert.False(t, hit)
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(1, 1, 1, -1, -1, -1)
	assert.Equal(t, [3]float32{-1, -1, -1}, box.Min)

	d, hit := Ray{math.Vec3{X: -5}, math.AxisX}.IntersectAABB(box)
	require.True(t, hit)
	assert.InDelta(t, 4, d, 1e-6)

	d, hit = Ray{math.Vec3{}, math.AxisX}.IntersectAABB(box)
	require.True(t, hit)
	assert.InDelta(t, 1, d, 1e-6, "inside the box returns the exit distance")

	_, hit = Ray{math.Vec3{X: -5, Y: 3}, math.AxisX}.IntersectAABB(box)
	assert.False(t, hit)
}
