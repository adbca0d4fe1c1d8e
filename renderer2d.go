package sketch

import (
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sketch/fontface"
	"github.com/gogpu/sketch/text"
)

// Defaults of a fresh Renderer2D.
const (
	DefaultTextSize    = 12.0
	DefaultLeadingMult = 1.25
)

// FaceLookup finds the face of a family that best matches an aspect.
// *fontface.FontSet implements it.
type FaceLookup interface {
	Lookup(family string, aspect font.Aspect) (*fontface.FontFace, bool)
}

// fallbackSource is drawn with until a loaded font is selected.
var fallbackSource = sync.OnceValue(func() *text.FontSource {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		panic("sketch: bundled fallback font is invalid: " + err.Error())
	}
	return src
})

// RendererOption configures a Renderer2D.
type RendererOption func(*Renderer2D)

// WithFaces sets where TextStyle looks up the italic and bold faces of
// the current family.
func WithFaces(l FaceLookup) RendererOption {
	return func(r *Renderer2D) {
		r.faces = l
	}
}

// Renderer2D is the software text renderer. It rasterizes into any
// draw.Image, usually the sketch's Pixmap.
//
// Until a loaded font is selected with TextFont, text is drawn with the
// bundled Go Regular face.
type Renderer2D struct {
	dst   draw.Image
	faces FaceLookup

	font    *fontface.FontFace
	size    float64
	leading float64
	align   Alignment
	style   Style
	wrap    text.WrapMode
	fill    color.Color
}

var _ TextRenderer = (*Renderer2D)(nil)

// NewRenderer2D creates a renderer drawing into dst.
func NewRenderer2D(dst draw.Image, opts ...RendererOption) *Renderer2D {
	r := &Renderer2D{
		dst:     dst,
		size:    DefaultTextSize,
		leading: DefaultTextSize * DefaultLeadingMult,
		align:   Alignment{Horizontal: AlignLeft, Vertical: AlignBaseline},
		style:   StyleNormal,
		wrap:    text.WrapWord,
		fill:    Black,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetFill sets the text color.
func (r *Renderer2D) SetFill(c color.Color) {
	if c != nil {
		r.fill = c
	}
}

// Fill returns the text color.
func (r *Renderer2D) Fill() color.Color {
	return r.fill
}

// Text implements TextRenderer.
func (r *Renderer2D) Text(s string, x, y float64, box ...float64) {
	if r.dst == nil {
		return
	}
	face := r.face()
	for _, l := range r.layout(face, norm.NFC.String(s), x, y, box) {
		text.Draw(r.dst, l.text, face, l.x, l.y, r.fill)
	}
}

// TextAlign implements TextRenderer. Values invalid for their axis are
// ignored.
func (r *Renderer2D) TextAlign(align ...Align) Alignment {
	if len(align) > 0 && align[0].Horizontal() {
		r.align.Horizontal = align[0]
	}
	if len(align) > 1 && align[1].Vertical() {
		r.align.Vertical = align[1]
	}
	return r.align
}

// TextAscent implements TextRenderer.
func (r *Renderer2D) TextAscent(s ...string) float64 {
	face := r.face()
	if len(s) == 0 {
		return face.Metrics().Ascent
	}
	return max(0, -face.Bounds(norm.NFC.String(s[0])).MinY)
}

// TextDescent implements TextRenderer.
func (r *Renderer2D) TextDescent(s ...string) float64 {
	face := r.face()
	if len(s) == 0 {
		return face.Metrics().Descent
	}
	return max(0, face.Bounds(norm.NFC.String(s[0])).MaxY)
}

// TextBounds implements TextRenderer. Text without ink, such as spaces,
// has a zero-size box at (x, y).
func (r *Renderer2D) TextBounds(s string, x, y float64, box ...float64) Bounds {
	face := r.face()

	var rect text.Rect
	for _, l := range r.layout(face, norm.NFC.String(s), x, y, box) {
		rect = rect.Union(face.Bounds(l.text).Translate(l.x, l.y))
	}
	if rect.Empty() {
		return Bounds{X: x, Y: y}
	}
	return Bounds{X: rect.MinX, Y: rect.MinY, W: rect.Width(), H: rect.Height()}
}

// TextLeading implements TextRenderer.
func (r *Renderer2D) TextLeading(leading ...float64) float64 {
	if len(leading) > 0 && validLength(leading[0]) {
		r.leading = leading[0]
	}
	return r.leading
}

// TextFont implements TextRenderer.
func (r *Renderer2D) TextFont(f *fontface.FontFace, size ...float64) *fontface.FontFace {
	if f != nil {
		r.font = f
	}
	if len(size) > 0 {
		r.TextSize(size[0])
	}
	return r.font
}

// TextSize implements TextRenderer.
func (r *Renderer2D) TextSize(size ...float64) float64 {
	if len(size) > 0 && validLength(size[0]) {
		r.size = size[0]
		r.leading = size[0] * DefaultLeadingMult
	}
	return r.size
}

// TextStyle implements TextRenderer.
func (r *Renderer2D) TextStyle(style ...Style) Style {
	if len(style) > 0 && style[0] >= StyleNormal && style[0] <= StyleBoldItalic {
		r.style = style[0]
	}
	return r.style
}

// TextWidth implements TextRenderer.
func (r *Renderer2D) TextWidth(s string) float64 {
	return text.MeasureText(norm.NFC.String(s), r.face())
}

// TextWrap implements TextRenderer.
func (r *Renderer2D) TextWrap(mode ...text.WrapMode) text.WrapMode {
	if len(mode) > 0 {
		r.wrap = mode[0]
	}
	return r.wrap
}

// face returns the face to draw with: the face of the current family
// matching the style when one is loaded, else the current font, else the
// fallback.
func (r *Renderer2D) face() text.Face {
	return r.source().Face(r.size)
}

func (r *Renderer2D) source() *text.FontSource {
	f := r.font
	if f != nil && r.style != StyleNormal && r.faces != nil {
		if styled, ok := r.faces.Lookup(f.Family(), styleAspect(r.style)); ok && styled.FontSource() != nil {
			f = styled
		}
	}
	if f != nil {
		if src := f.FontSource(); src != nil {
			return src
		}
	}
	return fallbackSource()
}

func styleAspect(s Style) font.Aspect {
	a := fontface.Descriptors{}.Aspect()
	if s == StyleItalic || s == StyleBoldItalic {
		a.Style = font.StyleItalic
	}
	if s == StyleBold || s == StyleBoldItalic {
		a.Weight = font.WeightBold
	}
	return a
}

// line is one laid-out line with its baseline origin.
type line struct {
	text string
	x, y float64
}

// layout breaks s into lines and positions them for the current
// alignment. A box of maxWidth[, maxHeight] wraps lines to maxWidth and
// drops lines that do not fit between y and y+maxHeight.
func (r *Renderer2D) layout(face text.Face, s string, x, y float64, box []float64) []line {
	var (
		maxW, maxH float64
		hasW, hasH bool
	)
	if len(box) > 0 && box[0] > 0 {
		maxW, hasW = box[0], true
	}
	if len(box) > 1 && box[1] > 0 {
		maxH, hasH = box[1], true
	}

	mode := r.wrap
	if !hasW {
		mode = text.WrapNone
	}
	wrapped := text.WrapText(s, face, maxW, mode)

	m := face.Metrics()
	n := float64(len(wrapped))
	block := m.Ascent + m.Descent + (n-1)*r.leading

	var baseline float64
	switch r.align.Vertical {
	case AlignTop:
		baseline = y + m.Ascent
	case AlignCenter:
		if hasH {
			baseline = y + m.Ascent + (maxH-block)/2
		} else {
			baseline = y + (m.Ascent-m.Descent)/2 - (n-1)*r.leading/2
		}
	case AlignBottom:
		if hasH {
			baseline = y + m.Ascent + maxH - block
		} else {
			baseline = y - m.Descent - (n-1)*r.leading
		}
	default:
		if hasW || hasH {
			baseline = y + m.Ascent
		} else {
			baseline = y
		}
	}

	const eps = 1e-6
	lines := make([]line, 0, len(wrapped))
	for i, w := range wrapped {
		ly := baseline + float64(i)*r.leading
		if hasH && (ly-m.Ascent < y-eps || ly+m.Descent > y+maxH+eps) {
			continue
		}

		lx := x
		switch r.align.Horizontal {
		case AlignCenter:
			if hasW {
				lx = x + (maxW-face.Advance(w.Text))/2
			} else {
				lx = x - face.Advance(w.Text)/2
			}
		case AlignRight:
			if hasW {
				lx = x + maxW - face.Advance(w.Text)
			} else {
				lx = x - face.Advance(w.Text)
			}
		}
		lines = append(lines, line{text: w.Text, x: lx, y: ly})
	}
	return lines
}

// validLength reports whether v is a usable size or leading.
func validLength(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
