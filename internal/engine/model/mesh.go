package model

import "github.com/Faultbox/navcube/pkg/math"

// BuildMesh triangulates convex polygons into a flat-shaded mesh.
// Each polygon is fanned from its first point and every vertex carries the
// polygon's face normal. Degenerate polygons are skipped.
// Returns nil if nothing survives.
func BuildMesh(polys ...Polygon) *Mesh {
	var vertices []Vertex
	var indices []uint32

	// Track bounding box
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for _, poly := range polys {
		if len(poly.Points) < 3 {
			continue
		}

		// Degenerate polygon detection
		normal := poly.Normal()
		if normal == (math.Vec3{}) {
			continue
		}

		hasUV := len(poly.TexCoords) == len(poly.Points)
		base := uint32(len(vertices))
		for i, p := range poly.Points {
			pos := p.Array()
			updateBounds(&bounds, pos)

			var uv [2]float32
			if hasUV {
				uv = [2]float32{poly.TexCoords[i].X, poly.TexCoords[i].Y}
			}
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   normal.Array(),
				TexCoord: uv,
			})
		}

		// Fan triangulation
		for i := 1; i+1 < len(poly.Points); i++ {
			indices = append(indices, base, base+uint32(i), base+uint32(i+1))
		}
	}

	if len(vertices) == 0 {
		return nil
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) [3]Vertex {
	return [3]Vertex{
		m.Vertices[m.Indices[i*3]],
		m.Vertices[m.Indices[i*3+1]],
		m.Vertices[m.Indices[i*3+2]],
	}
}

// Box returns an axis-aligned box of the given size centered at the origin,
// one quad per side.
func Box(sx, sy, sz float32) *Mesh {
	x, y, z := sx/2, sy/2, sz/2
	v := func(px, py, pz float32) math.Vec3 { return math.Vec3{X: px, Y: py, Z: pz} }
	return BuildMesh(
		Polygon{Points: []math.Vec3{v(-x, -y, z), v(x, -y, z), v(x, y, z), v(-x, y, z)}},     // +Z
		Polygon{Points: []math.Vec3{v(-x, y, -z), v(x, y, -z), v(x, -y, -z), v(-x, -y, -z)}}, // -Z
		Polygon{Points: []math.Vec3{v(x, -y, -z), v(x, y, -z), v(x, y, z), v(x, -y, z)}},     // +X
		Polygon{Points: []math.Vec3{v(-x, -y, z), v(-x, y, z), v(-x, y, -z), v(-x, -y, -z)}}, // -X
		Polygon{Points: []math.Vec3{v(x, y, -z), v(-x, y, -z), v(-x, y, z), v(x, y, z)}},     // +Y
		Polygon{Points: []math.Vec3{v(-x, -y, -z), v(x, -y, -z), v(x, -y, z), v(-x, -y, z)}}, // -Y
	)
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
