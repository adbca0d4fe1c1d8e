package text

// Face is a FontSource at one size. Faces are cheap to create and safe
// for concurrent use.
//
// All measurements are in pixels with y growing downwards, relative to a
// baseline origin at (0, 0), and match what Draw paints with the face.
type Face interface {
	// Metrics returns the line metrics.
	Metrics() Metrics

	// Advance returns the pen advance of text, kerning included.
	Advance(text string) float64

	// Bounds returns the ink box of text. Text without ink, such as
	// spaces, has an empty box.
	Bounds(text string) Rect

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// Source returns the FontSource the face was created from.
	Source() *FontSource

	// Size returns the size in pixels per em.
	Size() float64

	private()
}

// Rect is an axis-aligned box with y growing downwards, so the ink of a
// glyph above the baseline has a negative MinY.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Union returns the smallest rectangle containing both r and s. Empty
// rectangles do not contribute.
func (r Rect) Union(s Rect) Rect {
	switch {
	case r.Empty():
		return s
	case s.Empty():
		return r
	}
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

type sourceFace struct {
	source  *FontSource
	size    float64
	hinting Hinting
}

func (f *sourceFace) Metrics() Metrics {
	p := f.source.Parsed()
	if p == nil {
		return Metrics{}
	}
	m := p.Metrics(f.size, f.hinting)
	return Metrics{
		Ascent:    m.Ascent,
		Descent:   -min(m.Descent, 0),
		LineGap:   m.LineGap,
		XHeight:   m.XHeight,
		CapHeight: m.CapHeight,
	}
}

func (f *sourceFace) Advance(text string) float64 {
	p := f.source.Parsed()
	if p == nil {
		return 0
	}
	return f.pen(p, text, nil)
}

func (f *sourceFace) Bounds(text string) Rect {
	p := f.source.Parsed()
	if p == nil {
		return Rect{}
	}
	var r Rect
	f.pen(p, text, func(_ rune, g uint16, x float64) {
		r = r.Union(p.GlyphBounds(g, f.size, f.hinting).Translate(x, 0))
	})
	return r
}

func (f *sourceFace) HasGlyph(r rune) bool {
	p := f.source.Parsed()
	return p != nil && p.GlyphIndex(r) != 0
}

func (f *sourceFace) Source() *FontSource { return f.source }

func (f *sourceFace) Size() float64 { return f.size }

func (f *sourceFace) private() {}

// pen walks text the way Draw places it: each glyph at the current pen
// x, kerned against the previous glyph. fn, if non-nil, sees every rune.
// It returns the final pen position.
func (f *sourceFace) pen(p ParsedFont, text string, fn func(r rune, g uint16, x float64)) float64 {
	var (
		x    float64
		prev uint16
	)
	for i, r := range text {
		g := p.GlyphIndex(r)
		if i > 0 {
			x += p.Kern(prev, g, f.size, f.hinting)
		}
		if fn != nil {
			fn(r, g, x)
		}
		x += p.GlyphAdvance(g, f.size, f.hinting)
		prev = g
	}
	return x
}
