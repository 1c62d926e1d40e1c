// Package cube builds the chamfered navigation cube: six main faces, twelve
// edge bevels and eight corner triangles tiling the surface of a unit cube
// centered at the origin.
package cube

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/pkg/math"
)

// MaxChamfer is the exclusive upper bound of the chamfer ratio. At 1/√2 the
// main faces shrink to nothing.
const MaxChamfer = gomath.Sqrt2 / 2

// FacetCount is the number of facets on a chamfered cube.
const FacetCount = 6 + 12 + 8

// ErrChamferRange is returned for a chamfer ratio outside (0, 1/√2).
var ErrChamferRange = errors.New("chamfer ratio out of range")

// ValidateChamfer checks that c lies strictly inside (0, 1/√2).
func ValidateChamfer(c float32) error {
	if !(c > 0 && float64(c) < MaxChamfer) {
		return fmt.Errorf("%w: %v not in (0, %.4f)", ErrChamferRange, c, MaxChamfer)
	}
	return nil
}

// FaceWidth returns the side length of a main face for chamfer ratio c.
// The chamfer cut projects onto each face as c/√2 and is removed from both
// ends of the side.
func FaceWidth(c float32) float32 {
	return 1 - gomath.Sqrt2*c
}

// Cube is the immutable facet set. Only materials may change after Build, and
// callers serialize Paint with rendering.
type Cube struct {
	chamfer  float32
	facets   []*Facet
	bySides  map[Sides]*Facet
	outlines []Outline
}

const (
	halfPi    = gomath.Pi / 2
	quarterPi = gomath.Pi / 4
)

// Main faces as rotations of the top square. Side faces keep +Z as the label
// up direction; the top label reads with Back at the top.
var faceRotations = []struct {
	sides Sides
	rot   math.Mat4
}{
	{Front, math.RotateX(halfPi)},
	{Back, math.RotateZ(gomath.Pi).Mul(math.RotateX(halfPi))},
	{Left, math.RotateZ(-halfPi).Mul(math.RotateX(halfPi))},
	{Right, math.RotateZ(halfPi).Mul(math.RotateX(halfPi))},
	{Top, math.Identity()},
	{Bottom, math.RotateX(gomath.Pi)},
}

// Edge bevels: the first of each ring is tilted 45° into place, the rest
// follow by quarter turns around Z.
var edgeRings = []struct {
	base math.Mat4
	ring [4]Sides
}{
	{
		base: math.RotateZ(quarterPi).Mul(math.RotateX(halfPi)),
		ring: [4]Sides{Front | Right, Right | Back, Back | Left, Left | Front},
	},
	{
		base: math.RotateY(quarterPi),
		ring: [4]Sides{Top | Right, Top | Back, Top | Left, Top | Front},
	},
	{
		base: math.RotateY(quarterPi + halfPi),
		ring: [4]Sides{Bottom | Right, Bottom | Back, Bottom | Left, Bottom | Front},
	},
}

// Build constructs the 26 facets for chamfer ratio c using the palette's
// colors. It fails with ErrChamferRange for c outside (0, 1/√2).
func Build(c float32, palette Palette) (*Cube, error) {
	if err := ValidateChamfer(c); err != nil {
		return nil, err
	}

	cb := &Cube{
		chamfer: c,
		bySides: make(map[Sides]*Facet, FacetCount),
	}

	width := FaceWidth(c)

	// Main faces
	face := square(width, width, 0.5)
	for _, fr := range faceRotations {
		cb.add(newFacet(fr.sides, transform(face, fr.rot), palette.Face))
	}

	// Edge bevels sit on the bisecting diagonal of the removed edge
	offset := float32(gomath.Sqrt2/2) - c/2
	bevel := square(c, width, offset)
	quarter := math.RotateZ(halfPi)
	for _, er := range edgeRings {
		rot := er.base
		for _, sides := range er.ring {
			poly := transform(bevel, rot)
			poly.TexCoords = nil
			cb.add(newFacet(sides, poly, palette.Edge))
			cb.outlines = append(cb.outlines, Outline{
				Points: append([]math.Vec3(nil), poly.Points...),
				Color:  palette.Outline,
			})
			rot = quarter.Mul(rot)
		}
	}

	// Corners fill the gap left between three main faces
	for _, sx := range []float32{-1, 1} {
		for _, sy := range []float32{-1, 1} {
			for _, sz := range []float32{-1, 1} {
				corner := math.Vec3{X: sx, Y: sy, Z: sz}
				sides := pick(sx, Left, Right) | pick(sy, Front, Back) | pick(sz, Bottom, Top)
				cb.add(newFacet(sides, cb.cornerTriangle(sides, corner), palette.Corner))
			}
		}
	}

	return cb, nil
}

func (cb *Cube) add(f *Facet) {
	cb.facets = append(cb.facets, f)
	cb.bySides[f.Sides] = f
}

// cornerTriangle takes, from each main face touching the corner, the vertex
// nearest to the unchamfered corner point. Choosing by distance instead of by
// index keeps the triangle flush with its neighbours whatever rounding the
// face rotations introduced.
func (cb *Cube) cornerTriangle(sides Sides, corner math.Vec3) model.Polygon {
	var pts []math.Vec3
	for _, side := range sideOrder {
		if !sides.Has(side) {
			continue
		}
		pts = append(pts, nearestVertex(cb.bySides[side].Polygon.Points, corner))
	}

	tri := model.Polygon{Points: pts}
	if tri.Normal().Dot(corner) < 0 {
		pts[1], pts[2] = pts[2], pts[1]
	}
	return tri
}

func nearestVertex(pts []math.Vec3, target math.Vec3) math.Vec3 {
	best := pts[0]
	bestDist := best.Distance(target)
	for _, p := range pts[1:] {
		if d := p.Distance(target); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func pick(sign float32, neg, pos Sides) Sides {
	if sign < 0 {
		return neg
	}
	return pos
}

// square returns a w x h rectangle in the plane z = offset facing +Z, with
// texture coordinates running left to right and bottom to top.
func square(w, h, offset float32) model.Polygon {
	x, y := w/2, h/2
	return model.Polygon{
		Points: []math.Vec3{
			{X: -x, Y: -y, Z: offset},
			{X: x, Y: -y, Z: offset},
			{X: x, Y: y, Z: offset},
			{X: -x, Y: y, Z: offset},
		},
		TexCoords: []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}
}

func transform(p model.Polygon, m math.Mat4) model.Polygon {
	out := model.Polygon{
		Points:    make([]math.Vec3, len(p.Points)),
		TexCoords: append([]math.Vec2(nil), p.TexCoords...),
	}
	for i, pt := range p.Points {
		out.Points[i] = m.TransformVec3(pt)
	}
	return out
}

// Chamfer returns the chamfer ratio the cube was built with.
func (cb *Cube) Chamfer() float32 {
	return cb.chamfer
}

// FaceWidth returns the side length of the main faces.
func (cb *Cube) FaceWidth() float32 {
	return FaceWidth(cb.chamfer)
}

// Facets returns all facets: faces, then edges, then corners.
func (cb *Cube) Facets() []*Facet {
	return append([]*Facet(nil), cb.facets...)
}

// Facet looks a facet up by its side mask.
func (cb *Cube) Facet(sides Sides) (*Facet, bool) {
	f, ok := cb.bySides[sides]
	return f, ok
}

// Outlines returns the wireframe loops drawn over the edge bevels.
func (cb *Cube) Outlines() []Outline {
	return append([]Outline(nil), cb.outlines...)
}

// Paint replaces the material of one facet. Geometry is never touched.
func (cb *Cube) Paint(sides Sides, mat Material) error {
	f, ok := cb.bySides[sides]
	if !ok {
		return fmt.Errorf("paint: no facet %s", sides)
	}
	f.Material = mat
	return nil
}

// Len returns the number of facets.
func (cb *Cube) Len() int {
	return len(cb.facets)
}
