package navcube

import (
	"image"
	"sync"

	"github.com/Faultbox/navcube/internal/engine/raster"
)

// SoftwareSurface renders the widget on the CPU into an RGBA image. It needs
// no graphics context, which makes it the default for tests and snapshots.
type SoftwareSurface struct {
	mu     sync.Mutex
	r      *raster.Rasterizer
	closed bool
}

// NewSoftwareSurface allocates a width x height surface.
func NewSoftwareSurface(width, height int) *SoftwareSurface {
	return &SoftwareSurface{r: raster.New(width, height)}
}

// Render implements Renderer.
func (s *SoftwareSurface) Render(sc *Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.r.Begin(sc.Camera.ViewProjection(), sc.Clear)
	for _, f := range sc.Cube.Facets() {
		s.r.DrawMesh(f.Mesh, f.Material.Color, f.Material.Texture, &sc.Lights)
	}
	for _, o := range sc.Cube.Outlines() {
		s.r.DrawLineLoop(o.Points, o.Color)
	}
	return nil
}

// Image returns a copy of the last rendered frame.
func (s *SoftwareSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.r.Image()
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// Close implements Renderer.
func (s *SoftwareSurface) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
