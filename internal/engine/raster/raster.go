// Package raster provides a headless z-buffered triangle rasterizer used for
// snapshots and for hosts without an OpenGL context.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	gomath "math"

	"github.com/Faultbox/navcube/internal/engine/lighting"
	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/pkg/math"
)

// lineBias lets lines win the depth test against the surface they lie on.
const lineBias = 2e-3

// Rasterizer draws into an RGBA image with a float depth buffer.
type Rasterizer struct {
	img      *image.RGBA
	depth    []float32
	viewProj math.Mat4
	width    int
	height   int
}

// New creates a rasterizer with a w x h target.
func New(w, h int) *Rasterizer {
	return &Rasterizer{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		depth:  make([]float32, w*h),
		width:  w,
		height: h,
	}
}

// Image returns the color target. It is reused across frames.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Width returns the target width in pixels.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the target height in pixels.
func (r *Rasterizer) Height() int { return r.height }

// Begin clears color and depth and sets the view-projection for the frame.
func (r *Rasterizer) Begin(viewProj math.Mat4, clear color.RGBA) {
	r.viewProj = viewProj
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(clear), image.Point{}, draw.Src)

	// Copy-doubling clear
	if n := len(r.depth); n > 0 {
		r.depth[0] = gomath.MaxFloat32
		for i := 1; i < n; i *= 2 {
			copy(r.depth[i:], r.depth[:i])
		}
	}
}

// screenVertex is a vertex after projection.
type screenVertex struct {
	x, y, z float64
	invW    float64
	uv      [2]float32
}

func (r *Rasterizer) project(p [3]float32) (screenVertex, bool) {
	clip := r.viewProj.MulVec4(math.Vec4{p[0], p[1], p[2], 1})
	if clip[3] <= 0 {
		return screenVertex{}, false
	}
	w := float64(clip[3])
	ndcX := float64(clip[0]) / w
	ndcY := float64(clip[1]) / w
	return screenVertex{
		x:    (ndcX + 1) * 0.5 * float64(r.width),
		y:    (1 - ndcY) * 0.5 * float64(r.height), // Y flipped
		z:    float64(clip[2]) / w,
		invW: 1 / w,
	}, true
}

// DrawMesh rasterizes every triangle of mesh. Pixels take the texture color
// when tex is set, otherwise col, modulated by the rig's light factor for the
// triangle normal. Back faces are culled.
func (r *Rasterizer) DrawMesh(mesh *model.Mesh, col color.RGBA, tex *image.RGBA, rig *lighting.Rig) {
	if mesh == nil {
		return
	}
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		factor := [3]float32{1, 1, 1}
		if rig != nil {
			factor = rig.Factor(math.Vec3From(tri[0].Normal))
		}
		r.drawTriangle(tri, col, tex, factor)
	}
}

func (r *Rasterizer) drawTriangle(tri [3]model.Vertex, col color.RGBA, tex *image.RGBA, factor [3]float32) {
	var sv [3]screenVertex
	for i := range tri {
		v, ok := r.project(tri[i].Position)
		if !ok {
			return // No near-plane clipping
		}
		v.uv = tri[i].TexCoord
		sv[i] = v
	}

	// Screen Y points down, so front faces wind clockwise here
	area := edge(sv[0].x, sv[0].y, sv[1].x, sv[1].y, sv[2].x, sv[2].y)
	if area >= 0 {
		return
	}

	minX := int(gomath.Max(0, gomath.Floor(min3(sv[0].x, sv[1].x, sv[2].x))))
	maxX := int(gomath.Min(float64(r.width-1), gomath.Ceil(max3(sv[0].x, sv[1].x, sv[2].x))))
	minY := int(gomath.Max(0, gomath.Floor(min3(sv[0].y, sv[1].y, sv[2].y))))
	maxY := int(gomath.Min(float64(r.height-1), gomath.Ceil(max3(sv[0].y, sv[1].y, sv[2].y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			b0 := edge(sv[1].x, sv[1].y, sv[2].x, sv[2].y, px, py) / area
			b1 := edge(sv[2].x, sv[2].y, sv[0].x, sv[0].y, px, py) / area
			b2 := 1 - b0 - b1
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*sv[0].z + b1*sv[1].z + b2*sv[2].z
			idx := y*r.width + x
			if float32(z) >= r.depth[idx] {
				continue
			}

			c := col
			if tex != nil {
				// Perspective-correct UV
				w0, w1, w2 := b0*sv[0].invW, b1*sv[1].invW, b2*sv[2].invW
				sum := w0 + w1 + w2
				u := (w0*float64(sv[0].uv[0]) + w1*float64(sv[1].uv[0]) + w2*float64(sv[2].uv[0])) / sum
				v := (w0*float64(sv[0].uv[1]) + w1*float64(sv[1].uv[1]) + w2*float64(sv[2].uv[1])) / sum
				c = Sample(tex, u, v)
			}

			r.depth[idx] = float32(z)
			r.img.SetRGBA(x, y, color.RGBA{
				R: scale(c.R, factor[0]),
				G: scale(c.G, factor[1]),
				B: scale(c.B, factor[2]),
				A: 0xff,
			})
		}
	}
}

// DrawLineLoop draws a closed polyline, depth tested against the triangles
// already drawn.
func (r *Rasterizer) DrawLineLoop(pts []math.Vec3, col color.RGBA) {
	for i := range pts {
		r.drawLine(pts[i], pts[(i+1)%len(pts)], col)
	}
}

func (r *Rasterizer) drawLine(a, b math.Vec3, col color.RGBA) {
	sa, ok := r.project(a.Array())
	if !ok {
		return
	}
	sb, ok := r.project(b.Array())
	if !ok {
		return
	}

	dx := sb.x - sa.x
	dy := sb.y - sa.y
	steps := int(gomath.Ceil(gomath.Max(gomath.Abs(dx), gomath.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(sa.x + dx*t)
		y := int(sa.y + dy*t)
		if x < 0 || x >= r.width || y < 0 || y >= r.height {
			continue
		}
		z := float32(sa.z + (sb.z-sa.z)*t)
		idx := y*r.width + x
		if z-lineBias > r.depth[idx] {
			continue
		}
		r.img.SetRGBA(x, y, col)
	}
}

// Sample returns the nearest texel at (u, v). V runs bottom to top while
// image rows run top to bottom.
func Sample(tex *image.RGBA, u, v float64) color.RGBA {
	b := tex.Bounds()
	x := b.Min.X + clampInt(int(u*float64(b.Dx())), b.Dx()-1)
	y := b.Min.Y + clampInt(int((1-v)*float64(b.Dy())), b.Dy()-1)
	return tex.RGBAAt(x, y)
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func scale(c uint8, f float32) uint8 {
	v := float32(c) * f
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func min3(a, b, c float64) float64 {
	return gomath.Min(a, gomath.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return gomath.Max(a, gomath.Max(b, c))
}
