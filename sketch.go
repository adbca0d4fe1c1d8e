package sketch

import (
	"fmt"
	"image/color"

	"github.com/gogpu/sketch/fontface"
)

// FontRegistry receives every font face LoadFont constructs.
// *fontface.FontSet implements it.
type FontRegistry interface {
	Add(face *fontface.FontFace)
}

// Sketch is the drawing context of a sketch. Its text functions forward
// to the renderer chosen at construction.
//
// A Sketch is not safe for concurrent use, except for LoadFont and
// LoadFontAsync, which may run alongside drawing.
type Sketch struct {
	width  int
	height int

	pixmap    *Pixmap
	renderer  TextRenderer
	validator ParamValidator
	reporter  Reporter
	fonts     FontRegistry
	fetcher   fontface.Fetcher
}

// NewSketch creates a sketch of the given size.
//
// Without options, it draws with a Renderer2D into a new transparent
// Pixmap, validates parameters with SchemaValidator, reports through
// LogReporter and registers fonts in a fresh *fontface.FontSet. Friendly
// diagnostics go to slog.Default until SetLogger routes them elsewhere.
func NewSketch(width, height int, opts ...SketchOption) *Sketch {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.fonts == nil {
		o.fonts = &fontface.FontSet{}
	}
	if o.pixmap == nil {
		o.pixmap = NewPixmap(width, height)
	}
	if o.renderer == nil {
		var ropts []RendererOption
		if l, ok := o.fonts.(FaceLookup); ok {
			ropts = append(ropts, WithFaces(l))
		}
		o.renderer = NewRenderer2D(o.pixmap, ropts...)
	}
	Logger().Debug("sketch: created", "width", width, "height", height,
		"renderer", fmt.Sprintf("%T", o.renderer))

	return &Sketch{
		width:     width,
		height:    height,
		pixmap:    o.pixmap,
		renderer:  o.renderer,
		validator: o.validator,
		reporter:  o.reporter,
		fonts:     o.fonts,
		fetcher:   o.fetcher,
	}
}

// Width returns the sketch width in pixels.
func (s *Sketch) Width() int { return s.width }

// Height returns the sketch height in pixels.
func (s *Sketch) Height() int { return s.height }

// Pixmap returns the pixmap backing the sketch.
func (s *Sketch) Pixmap() *Pixmap { return s.pixmap }

// Renderer returns the renderer text functions are forwarded to.
func (s *Sketch) Renderer() TextRenderer { return s.renderer }

// Fonts returns the font registry.
func (s *Sketch) Fonts() FontRegistry { return s.fonts }

// Background fills the pixmap with c.
func (s *Sketch) Background(c color.Color) {
	s.pixmap.Clear(FromColor(c))
}

// Fill sets the text color, if the renderer supports one.
func (s *Sketch) Fill(c color.Color) {
	if f, ok := s.renderer.(interface{ SetFill(color.Color) }); ok {
		f.SetFill(c)
	}
}

// SavePNG writes the pixmap to path.
func (s *Sketch) SavePNG(path string) error {
	return s.pixmap.SavePNG(path)
}
