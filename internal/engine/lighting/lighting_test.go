package lighting

import (
	"testing"

	m "github.com/Faultbox/navcube/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     m.Vec3
	}{
		{"zenith", 0, 90, m.Vec3{Z: 1}},
		{"east horizon", 0, 0, m.Vec3{X: 1}},
		{"north horizon", 90, 0, m.Vec3{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			if !got.ApproxEqual(tt.want, 1e-6) {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestShadeFacingAway(t *testing.T) {
	rig := DefaultRig(0, 90)

	// Facing away from the sun only receives ambient light
	r, g, b := rig.Shade(m.Vec3{Z: -1}, 200, 100, 50)
	if r != 120 || g != 60 || b != 30 {
		t.Errorf("Shade away = (%d,%d,%d), want (120,60,30)", r, g, b)
	}
}

func TestShadeSaturates(t *testing.T) {
	rig := DefaultRig(0, 90)
	rig.Ambient.Intensity = 2

	r, _, _ := rig.Shade(m.Vec3{Z: 1}, 200, 0, 0)
	if r != 255 {
		t.Errorf("expected saturated red 255, got %d", r)
	}
}
