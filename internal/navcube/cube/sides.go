package cube

import (
	"math/bits"
	"strings"

	"github.com/Faultbox/navcube/pkg/math"
)

// Sides is a bit set of cube faces. A single flag names a main face, two
// flags name the bevel between adjacent faces and three name a corner.
type Sides uint8

const (
	Front Sides = 1 << iota
	Back
	Left
	Right
	Top
	Bottom
)

var sideOrder = [...]Sides{Front, Back, Left, Right, Top, Bottom}

var sideNames = map[Sides]string{
	Front:  "Front",
	Back:   "Back",
	Left:   "Left",
	Right:  "Right",
	Top:    "Top",
	Bottom: "Bottom",
}

// Outward unit normals in the Z-up world.
var sideNormals = map[Sides]math.Vec3{
	Front:  {X: 0, Y: -1, Z: 0},
	Back:   {X: 0, Y: 1, Z: 0},
	Left:   {X: -1, Y: 0, Z: 0},
	Right:  {X: 1, Y: 0, Z: 0},
	Top:    {X: 0, Y: 0, Z: 1},
	Bottom: {X: 0, Y: 0, Z: -1},
}

// AllSides returns the six single faces in display order.
func AllSides() []Sides {
	out := make([]Sides, len(sideOrder))
	copy(out, sideOrder[:])
	return out
}

// Count returns the number of flags set.
func (s Sides) Count() int {
	return bits.OnesCount8(uint8(s))
}

// Has reports whether every flag of other is set in s.
func (s Sides) Has(other Sides) bool {
	return s&other == other
}

// Kind classifies the mask by its flag count.
func (s Sides) Kind() Kind {
	switch s.Count() {
	case 1:
		return KindFace
	case 2:
		return KindEdge
	case 3:
		return KindCorner
	}
	return KindInvalid
}

// Valid reports whether the mask names a real facet: one to three flags with
// no pair of opposite faces.
func (s Sides) Valid() bool {
	if s == 0 || s&^(Front|Back|Left|Right|Top|Bottom) != 0 {
		return false
	}
	if s.Has(Front|Back) || s.Has(Left|Right) || s.Has(Top|Bottom) {
		return false
	}
	return s.Count() <= 3
}

// Normal returns the outward direction of the facet named by s: the
// normalized sum of its faces' normals.
func (s Sides) Normal() math.Vec3 {
	var n math.Vec3
	for _, side := range sideOrder {
		if s.Has(side) {
			n = n.Add(sideNormals[side])
		}
	}
	return n.Normalize()
}

// String joins the flag names with '|', e.g. "Top|Right".
func (s Sides) String() string {
	if s == 0 {
		return "None"
	}
	var parts []string
	for _, side := range sideOrder {
		if s.Has(side) {
			parts = append(parts, sideNames[side])
		}
	}
	return strings.Join(parts, "|")
}

// Kind is the facet category.
type Kind int

const (
	KindInvalid Kind = iota
	KindFace
	KindEdge
	KindCorner
)

func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	}
	return "invalid"
}
