package label

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	gomath "math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/navcube/internal/navcube/cube"
)

const (
	// DefaultCanvas is the label texture size in pixels.
	DefaultCanvas = 256
	// DefaultRatio is the share of the canvas width the longest label spans.
	DefaultRatio = 0.9

	referenceSize = 72
)

// TextOptions configures a TextPainter. Zero values take the defaults.
type TextOptions struct {
	Canvas    int
	Ratio     float64
	TextColor color.RGBA
	Names     map[cube.Sides]string // overrides the side names
	Font      []byte                // TrueType/OpenType data, Go Bold if empty
}

// TextPainter renders each face name centered on a square canvas filled with
// the face color. All faces share one font size, fitted to the longest name.
type TextPainter struct {
	canvas int
	size   float64
	face   font.Face
	ink    image.Image
	names  map[cube.Sides]string
}

// NewTextPainter parses the font and fits its size once for all faces.
func NewTextPainter(opts TextOptions) (*TextPainter, error) {
	if opts.Canvas <= 0 {
		opts.Canvas = DefaultCanvas
	}
	if opts.Ratio <= 0 || opts.Ratio > 1 {
		opts.Ratio = DefaultRatio
	}
	if opts.TextColor == (color.RGBA{}) {
		opts.TextColor = color.RGBA{A: 0xff}
	}
	data := opts.Font
	if len(data) == 0 {
		data = gobold.TTF
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	names := make(map[cube.Sides]string, 6)
	longest := ""
	for _, side := range cube.AllSides() {
		name := side.String()
		if n, ok := opts.Names[side]; ok {
			name = n
		}
		names[side] = name
		if len(name) > len(longest) {
			longest = name
		}
	}

	size, err := FitFontSize(f, longest, opts.Canvas, opts.Ratio)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}

	return &TextPainter{
		canvas: opts.Canvas,
		size:   size,
		face:   face,
		ink:    image.NewUniform(opts.TextColor),
		names:  names,
	}, nil
}

// FitFontSize returns the point size at which text spans ratio of the canvas
// width. The text is measured once at a reference size and scaled linearly.
func FitFontSize(f *opentype.Font, text string, canvas int, ratio float64) (float64, error) {
	if text == "" {
		return 0, errors.New("fit font: empty text")
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    referenceSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return 0, fmt.Errorf("fit font: %w", err)
	}
	defer face.Close()

	width := fixedToFloat(font.MeasureString(face, text))
	if width <= 0 {
		return 0, fmt.Errorf("fit font: %q has no width", text)
	}
	return gomath.Round(referenceSize * ratio * float64(canvas) / width), nil
}

// Size returns the fitted font size in points.
func (p *TextPainter) Size() float64 {
	return p.size
}

// Close releases the font face.
func (p *TextPainter) Close() error {
	return p.face.Close()
}

// Decorate implements Decorator.
func (p *TextPainter) Decorate(side cube.Sides, base cube.Material) (cube.Material, error) {
	name, ok := p.names[side]
	if !ok {
		return base, fmt.Errorf("no label for %s", side)
	}

	img := image.NewRGBA(image.Rect(0, 0, p.canvas, p.canvas))
	draw.Draw(img, img.Bounds(), image.NewUniform(base.Color), image.Point{}, draw.Src)

	// Center horizontally on the advance and vertically on the cap height
	metrics := p.face.Metrics()
	width := font.MeasureString(p.face, name)
	x := (fixed.I(p.canvas) - width) / 2
	y := (fixed.I(p.canvas) + metrics.CapHeight) / 2
	if metrics.CapHeight <= 0 {
		y = (fixed.I(p.canvas) + metrics.Ascent - metrics.Descent) / 2
	}

	d := font.Drawer{
		Dst:  img,
		Src:  p.ink,
		Face: p.face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(name)

	return cube.Material{Color: base.Color, Texture: img}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
