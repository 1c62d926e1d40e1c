package cube

import (
	"image"
	"image/color"

	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/pkg/math"
)

// Material is the paint of a facet. Texture, when set, covers the facet's
// texture coordinates and replaces the flat color.
type Material struct {
	Color   color.RGBA
	Texture *image.RGBA
}

// Facet is one planar patch of the chamfered cube.
type Facet struct {
	Sides   Sides
	Kind    Kind
	Polygon model.Polygon // Outward counter-clockwise winding
	Normal  math.Vec3
	Mesh    *model.Mesh

	Material Material
}

// Outline is a closed line loop drawn over an edge bevel. Outlines carry no
// side tag and take no part in picking.
type Outline struct {
	Points []math.Vec3
	Color  color.RGBA
}

// Palette holds the default colors for each facet kind.
type Palette struct {
	Face    color.RGBA
	Edge    color.RGBA
	Corner  color.RGBA
	Outline color.RGBA
}

// DefaultPalette returns the stock grey-blue scheme.
func DefaultPalette() Palette {
	return Palette{
		Face:    color.RGBA{R: 0xd6, G: 0xd7, B: 0xdc, A: 0xff},
		Edge:    color.RGBA{R: 0xb1, G: 0xc5, B: 0xd4, A: 0xff},
		Corner:  color.RGBA{R: 0x71, G: 0x87, B: 0x9a, A: 0xff},
		Outline: color.RGBA{A: 0xff},
	}
}

func newFacet(sides Sides, poly model.Polygon, col color.RGBA) *Facet {
	return &Facet{
		Sides:    sides,
		Kind:     sides.Kind(),
		Polygon:  poly,
		Normal:   poly.Normal(),
		Mesh:     model.BuildMesh(poly),
		Material: Material{Color: col},
	}
}

// Center returns the centroid of the facet.
func (f *Facet) Center() math.Vec3 {
	return f.Polygon.Centroid()
}

// Area returns the surface area of the facet.
func (f *Facet) Area() float32 {
	pts := f.Polygon.Points
	var sum math.Vec3
	for i := 1; i+1 < len(pts); i++ {
		sum = sum.Add(pts[i].Sub(pts[0]).Cross(pts[i+1].Sub(pts[0])))
	}
	return sum.Length() / 2
}
