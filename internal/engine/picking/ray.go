// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/pkg/math"
)

// Epsilon below which a ray is treated as parallel to a triangle plane.
const parallelEpsilon = 1e-7

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// ScreenToNDC converts pixel coordinates inside a viewport of the given size
// to normalized device coordinates in [-1, 1], Y pointing up.
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (ndcX, ndcY float32) {
	ndcX = 2.0*screenX/viewportW - 1.0
	ndcY = 1.0 - 2.0*screenY/viewportH // Flip Y
	return ndcX, ndcY
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX, ndcY := ScreenToNDC(screenX, screenY, viewportW, viewportH)
	return NDCToRay(ndcX, ndcY, invViewProj)
}

// NDCToRay unprojects a point in normalized device coordinates through the
// near and far planes and returns the ray between them.
func NDCToRay(ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	nearWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, 1.0, 1.0})

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

func unproject(invViewProj math.Mat4, p math.Vec4) math.Vec3 {
	w := invViewProj.MulVec4(p)
	// Perspective divide
	if w[3] != 0 {
		return math.Vec3{X: w[0] / w[3], Y: w[1] / w[3], Z: w[2] / w[3]}
	}
	return math.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectTriangle tests the ray against triangle (a, b, c) from either side
// (Möller-Trumbore). Returns the distance along the ray and whether the
// triangle was hit in front of the origin.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -parallelEpsilon && det < parallelEpsilon {
		return 0, false // Ray parallel to triangle
	}
	invDet := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * invDet
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectMesh tests the ray against every triangle of the mesh and returns
// the nearest hit distance and the triangle index.
func (r Ray) IntersectMesh(m *model.Mesh) (t float32, triangle int, hit bool) {
	if m == nil {
		return 0, -1, false
	}
	// Broad phase; flat meshes have zero-thickness boxes, so pad them
	if _, ok := r.IntersectAABB(AABB(m.Bounds).Expand(1e-4)); !ok {
		return 0, -1, false
	}

	best := float32(gomath.MaxFloat32)
	triangle = -1
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		d, ok := r.IntersectTriangle(
			math.Vec3From(tri[0].Position),
			math.Vec3From(tri[1].Position),
			math.Vec3From(tri[2].Position),
		)
		if ok && d < best {
			best = d
			triangle = i
		}
	}
	if triangle < 0 {
		return 0, -1, false
	}
	return best, triangle, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - origin[axis]) / dir[axis]
		t2 := (box.Max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	// Check if intersection is valid
	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates an AABB from min and max corners, handling swapped input.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	box := AABB{
		Min: [3]float32{minX, minY, minZ},
		Max: [3]float32{maxX, maxY, maxZ},
	}
	// Ensure min < max for each axis
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// Expand returns the box grown by eps on every side.
func (b AABB) Expand(eps float32) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] -= eps
		b.Max[i] += eps
	}
	return b
}
