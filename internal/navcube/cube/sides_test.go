package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/navcube/pkg/math"
)

func TestSidesString(t *testing.T) {
	tests := []struct {
		s    Sides
		want string
	}{
		{0, "None"},
		{Front, "Front"},
		{Top | Right, "Right|Top"},
		{Bottom | Left | Back, "Back|Left|Bottom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestSidesFlagValues(t *testing.T) {
	assert.Equal(t, Sides(1), Front)
	assert.Equal(t, Sides(2), Back)
	assert.Equal(t, Sides(4), Left)
	assert.Equal(t, Sides(8), Right)
	assert.Equal(t, Sides(16), Top)
	assert.Equal(t, Sides(32), Bottom)
}

func TestSidesValid(t *testing.T) {
	tests := []struct {
		s    Sides
		want bool
	}{
		{0, false},
		{Front, true},
		{Front | Back, false},
		{Top | Left, true},
		{Top | Left | Front, true},
		{Top | Bottom | Front, false},
		{Front | Left | Top | Right, false},
		{64, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.Valid(), tt.s.String())
	}
}

func TestSidesNormal(t *testing.T) {
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 1}, Top.Normal())
	assert.Equal(t, math.Vec3{X: 0, Y: -1, Z: 0}, Front.Normal())

	n := (Right | Back | Top).Normal()
	k := float32(0.57735026)
	assert.True(t, n.ApproxEqual(math.Vec3{X: k, Y: k, Z: k}, 1e-6), "%v", n)
}

func TestSidesKind(t *testing.T) {
	assert.Equal(t, KindFace, Left.Kind())
	assert.Equal(t, KindEdge, (Left | Top).Kind())
	assert.Equal(t, KindCorner, (Left | Top | Front).Kind())
	assert.Equal(t, KindInvalid, Sides(0).Kind())
	assert.Equal(t, "corner", KindCorner.String())
	assert.Len(t, AllSides(), 6)
}
