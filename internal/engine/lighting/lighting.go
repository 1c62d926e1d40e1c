// Package lighting provides ambient and directional lighting for 3D rendering.
package lighting

import (
	"math"

	m "github.com/Faultbox/navcube/pkg/math"
)

// Ambient is a uniform light reaching every surface.
type Ambient struct {
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
}

// Directional is a light infinitely far away, like the sun.
type Directional struct {
	Direction m.Vec3     // Normalized, pointing towards the light
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
}

// Rig is the light set of a scene.
type Rig struct {
	Ambient Ambient
	Sun     Directional
}

// DefaultRig returns a soft ambient light plus a white key light coming from
// the given longitude/latitude in degrees.
func DefaultRig(longitude, latitude float32) Rig {
	return Rig{
		Ambient: Ambient{Color: [3]float32{1, 1, 1}, Intensity: 0.6},
		Sun: Directional{
			Direction: SunDirection(longitude, latitude),
			Color:     [3]float32{1, 1, 1},
			Intensity: 0.5,
		},
	}
}

// SunDirection converts longitude/latitude angles to a light direction vector
// in a Z-up world. Longitude is rotation around Z from +X, latitude is
// elevation above the XY plane, both in degrees.
// Returns a normalized direction vector pointing towards the sun.
func SunDirection(longitude, latitude float32) m.Vec3 {
	// Convert degrees to radians
	lonRad := float64(longitude) * math.Pi / 180.0
	latRad := float64(latitude) * math.Pi / 180.0

	// Spherical to Cartesian conversion
	return m.Vec3{
		X: float32(math.Cos(latRad) * math.Cos(lonRad)),
		Y: float32(math.Cos(latRad) * math.Sin(lonRad)),
		Z: float32(math.Sin(latRad)),
	}
}

// Factor returns the per-channel light multiplier for a surface normal.
func (r Rig) Factor(normal m.Vec3) [3]float32 {
	diffuse := normal.Dot(r.Sun.Direction)
	if diffuse < 0 {
		diffuse = 0
	}

	var out [3]float32
	for i := 0; i < 3; i++ {
		out[i] = r.Ambient.Color[i]*r.Ambient.Intensity + r.Sun.Color[i]*r.Sun.Intensity*diffuse
	}
	return out
}

// Shade applies the rig to an 8-bit RGB color, saturating at 255.
func (r Rig) Shade(normal m.Vec3, red, green, blue uint8) (uint8, uint8, uint8) {
	f := r.Factor(normal)
	return scale8(red, f[0]), scale8(green, f[1]), scale8(blue, f[2])
}

func scale8(c uint8, f float32) uint8 {
	v := float32(c) * f
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
