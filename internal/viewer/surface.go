package viewer

import (
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/engine/framebuffer"
	"github.com/Faultbox/navcube/internal/engine/renderer"
	"github.com/Faultbox/navcube/internal/navcube"
	"github.com/Faultbox/navcube/internal/navcube/cube"
)

// gpuFacet is a facet mesh on the GPU plus the texture last uploaded for it.
type gpuFacet struct {
	mesh    *renderer.Mesh
	source  *image.RGBA
	texture uint32
}

// GLSurface renders the widget into an offscreen framebuffer whose color
// texture the host composites over its view. All calls must come from the
// GL thread.
type GLSurface struct {
	r  *renderer.Renderer
	fb *framebuffer.Framebuffer

	facets map[*cube.Facet]*gpuFacet
	loops  []*renderer.LineLoop
	log    *zap.Logger
}

// NewGLSurface creates a width x height pixel offscreen target.
func NewGLSurface(r *renderer.Renderer, width, height int, log *zap.Logger) (*GLSurface, error) {
	fb, err := framebuffer.New(int32(width), int32(height))
	if err != nil {
		return nil, err
	}
	return &GLSurface{
		r:      r,
		fb:     fb,
		facets: make(map[*cube.Facet]*gpuFacet),
		log:    log,
	}, nil
}

// Render implements navcube.Renderer.
func (s *GLSurface) Render(sc *navcube.Scene) error {
	if s.fb == nil {
		return navcube.ErrClosed
	}
	s.upload(sc.Cube)

	restore := s.fb.Bind(sc.Clear)
	defer restore()

	viewProj := sc.Camera.ViewProjection()
	for _, f := range sc.Cube.Facets() {
		g := s.facets[f]
		s.r.DrawMesh(g.mesh, viewProj, renderer.Material{
			Color:   f.Material.Color,
			Texture: g.texture,
			Lit:     true,
		}, sc.Lights)
	}
	for i, o := range sc.Cube.Outlines() {
		s.r.DrawLoop(s.loops[i], viewProj, o.Color)
	}
	return nil
}

// upload sends new facets and changed textures to the GPU.
func (s *GLSurface) upload(cb *cube.Cube) {
	for _, f := range cb.Facets() {
		g, ok := s.facets[f]
		if !ok {
			g = &gpuFacet{mesh: s.r.Upload(f.Mesh)}
			s.facets[f] = g
		}
		if g.source != f.Material.Texture {
			if g.texture != 0 {
				s.r.DeleteTexture(g.texture)
				g.texture = 0
			}
			if f.Material.Texture != nil {
				g.texture = s.r.UploadTexture(f.Material.Texture)
			}
			g.source = f.Material.Texture
		}
	}

	if s.loops == nil {
		for _, o := range cb.Outlines() {
			s.loops = append(s.loops, s.r.UploadLoop(o.Points))
		}
		s.log.Debug("navcube uploaded",
			zap.Int("facets", len(s.facets)),
			zap.Int("outlines", len(s.loops)))
	}
}

// Texture returns the color texture holding the last frame.
func (s *GLSurface) Texture() uint32 {
	return s.fb.Texture()
}

// Image reads the last frame back from the GPU.
func (s *GLSurface) Image() *image.RGBA {
	return s.fb.ReadImage()
}

// Close implements navcube.Renderer.
func (s *GLSurface) Close() error {
	if s.fb == nil {
		return nil
	}
	for _, g := range s.facets {
		s.r.DeleteMesh(g.mesh)
		if g.texture != 0 {
			s.r.DeleteTexture(g.texture)
		}
	}
	for _, l := range s.loops {
		s.r.DeleteLoop(l)
	}
	s.facets = nil
	s.loops = nil
	s.fb.Destroy()
	s.fb = nil
	return nil
}
