// Package model provides triangle mesh building for rendering and picking.
package model

import "github.com/Faultbox/navcube/pkg/math"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
// The layout is tightly packed for GPU upload (8 floats, 32 bytes).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds triangle data ready for GPU upload or software rasterization.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Polygon is a convex planar polygon wound counter-clockwise when seen from
// the side its normal points to. TexCoords is optional; when present it must
// have one entry per point.
type Polygon struct {
	Points    []math.Vec3
	TexCoords []math.Vec2
}

// Normal returns the unit normal implied by the winding of the first three
// points, or the zero vector for degenerate input.
func (p Polygon) Normal() math.Vec3 {
	if len(p.Points) < 3 {
		return math.Vec3{}
	}
	e1 := p.Points[1].Sub(p.Points[0])
	e2 := p.Points[2].Sub(p.Points[0])
	n := e1.Cross(e2)
	if n.Length() < 1e-6 {
		return math.Vec3{}
	}
	return n.Normalize()
}

// Centroid returns the average of the polygon points.
func (p Polygon) Centroid() math.Vec3 {
	var c math.Vec3
	for _, pt := range p.Points {
		c = c.Add(pt)
	}
	if len(p.Points) == 0 {
		return c
	}
	return c.Scale(1 / float32(len(p.Points)))
}
