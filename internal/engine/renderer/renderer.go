// Package renderer draws meshes, line loops and screen overlays with OpenGL.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/engine/lighting"
	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/internal/engine/shader"
	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Renderer owns the shader programs and global GL state.
type Renderer struct {
	config Config

	mesh    *shader.Program
	overlay *shader.Program

	quadVAO uint32
	quadVBO uint32
}

// Mesh is a model.Mesh uploaded to the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// LineLoop is a closed polyline uploaded to the GPU.
type LineLoop struct {
	vao, vbo uint32
	count    int32
}

// Material selects how a mesh is shaded.
type Material struct {
	Color   color.RGBA
	Texture uint32 // Zero for untextured
	Lit     bool
}

// New initializes OpenGL and builds the programs.
// Must be called after the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{config: cfg}

	var err error
	if r.mesh, err = shader.New(meshVertexShader, meshFragmentShader); err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	if r.overlay, err = shader.New(overlayVertexShader, overlayFragmentShader); err != nil {
		r.mesh.Delete()
		return nil, fmt.Errorf("overlay program: %w", err)
	}
	r.createQuad()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	logger.Debug("renderer ready",
		zap.Uint32("mesh_program", r.mesh.ID),
		zap.Uint32("overlay_program", r.overlay.ID))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	r.mesh.Delete()
	r.overlay.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the window to the background color.
func (r *Renderer) Begin() {
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	c := r.config.Background
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Upload copies a mesh into GPU buffers.
func (r *Renderer) Upload(m *model.Mesh) *Mesh {
	gm := &Mesh{count: int32(len(m.Indices))}
	stride := int32(unsafe.Sizeof(model.Vertex{}))

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// Position, normal, texcoord
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return gm
}

// UploadLoop copies a closed polyline into a GPU buffer.
func (r *Renderer) UploadLoop(points []math.Vec3) *LineLoop {
	data := make([]float32, 0, len(points)*3)
	for _, p := range points {
		data = append(data, p.X, p.Y, p.Z)
	}

	ll := &LineLoop{count: int32(len(points))}
	gl.GenVertexArrays(1, &ll.vao)
	gl.BindVertexArray(ll.vao)
	gl.GenBuffers(1, &ll.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, ll.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return ll
}

// UploadTexture creates an RGBA texture from img. Rows are flipped so that
// texture coordinate v=1 is the top of the image.
func (r *Renderer) UploadTexture(img *image.RGBA) uint32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	flipped := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		src := img.Pix[(b.Dy()-1-y)*img.Stride:]
		copy(flipped[y*w*4:(y+1)*w*4], src[:w*4])
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(flipped))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// DrawMesh draws an uploaded mesh with the given material and lights.
func (r *Renderer) DrawMesh(m *Mesh, viewProj math.Mat4, mat Material, rig lighting.Rig) {
	p := r.mesh
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetVec4("uColor", rgba(mat.Color))
	p.SetBool("uLit", mat.Lit)
	p.SetColor("uAmbient", scaled(rig.Ambient.Color, rig.Ambient.Intensity))
	p.SetVec3("uLightDir", rig.Sun.Direction)
	p.SetColor("uLightColor", scaled(rig.Sun.Color, rig.Sun.Intensity))

	p.SetBool("uTextured", mat.Texture != 0)
	if mat.Texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, mat.Texture)
		p.SetInt("uTexture", 0)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// DrawLoop draws an uploaded line loop in a flat color. The depth test uses
// LEQUAL so lines lying on a surface stay visible.
func (r *Renderer) DrawLoop(l *LineLoop, viewProj math.Mat4, c color.RGBA) {
	p := r.mesh
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetVec4("uColor", rgba(c))
	p.SetBool("uLit", false)
	p.SetBool("uTextured", false)

	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.POLYGON_OFFSET_LINE)
	gl.PolygonOffset(-1, -1)
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINE_LOOP, 0, l.count)
	gl.BindVertexArray(0)
	gl.Disable(gl.POLYGON_OFFSET_LINE)
	gl.DepthFunc(gl.LESS)
}

// DrawOverlay alpha-blends a texture onto the window rectangle whose
// top-left corner is (x, y) in window pixels.
func (r *Renderer) DrawOverlay(tex uint32, x, y, w, h int) {
	winW, winH := float32(r.config.Width), float32(r.config.Height)
	// Window pixels to NDC, Y up
	x0 := float32(x)/winW*2 - 1
	x1 := float32(x+w)/winW*2 - 1
	y0 := 1 - float32(y+h)/winH*2
	y1 := 1 - float32(y)/winH*2

	p := r.overlay
	p.Use()
	p.SetVec4("uRect", [4]float32{x0, y0, x1, y1})
	p.SetInt("uTexture", 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA) // Premultiplied target
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// DeleteMesh releases GPU buffers of m.
func (r *Renderer) DeleteMesh(m *Mesh) {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// DeleteLoop releases GPU buffers of l.
func (r *Renderer) DeleteLoop(l *LineLoop) {
	gl.DeleteVertexArrays(1, &l.vao)
	gl.DeleteBuffers(1, &l.vbo)
}

// DeleteTexture releases a texture created by UploadTexture.
func (r *Renderer) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (r *Renderer) createQuad() {
	// Unit quad corners, mapped to uRect in the vertex shader
	vertices := []float32{0, 0, 1, 0, 0, 1, 1, 1}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func rgba(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func scaled(c [3]float32, k float32) [3]float32 {
	return [3]float32{c[0] * k, c[1] * k, c[2] * k}
}
