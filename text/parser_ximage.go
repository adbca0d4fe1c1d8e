package text

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser parses with golang.org/x/image/font/opentype, the same
// package Draw rasterizes with.
type ximageParser struct{}

func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont queries sfnt with the scale and hinting an opentype.Face of
// the same size would use, so measurements match font.Drawer output.
type ximageFont struct {
	font *opentype.Font
}

func (f *ximageFont) name(id sfnt.NameID) string {
	s, err := f.font.Name(nil, id)
	if err != nil {
		return ""
	}
	return s
}

func (f *ximageFont) Name() string     { return f.name(sfnt.NameIDFamily) }
func (f *ximageFont) FullName() string { return f.name(sfnt.NameIDFull) }
func (f *ximageFont) NumGlyphs() int   { return f.font.NumGlyphs() }
func (f *ximageFont) UnitsPerEm() int  { return int(f.font.UnitsPerEm()) }

func (f *ximageFont) GlyphIndex(r rune) uint16 {
	g, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(g)
}

func (f *ximageFont) GlyphAdvance(glyph uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyph), toFixed(ppem), xHinting(h))
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (f *ximageFont) GlyphBounds(glyph uint16, ppem float64, h Hinting) Rect {
	var buf sfnt.Buffer
	b, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyph), toFixed(ppem), xHinting(h))
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fromFixed(b.Min.X),
		MinY: fromFixed(b.Min.Y),
		MaxX: fromFixed(b.Max.X),
		MaxY: fromFixed(b.Max.Y),
	}
}

func (f *ximageFont) Kern(left, right uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), toFixed(ppem), xHinting(h))
	if err != nil {
		return 0
	}
	return fromFixed(k)
}

func (f *ximageFont) Metrics(ppem float64, h Hinting) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(ppem), xHinting(h))
	if err != nil {
		return FontMetrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	ascent, descent := fromFixed(m.Ascent), fromFixed(m.Descent)
	return FontMetrics{
		Ascent:    ascent,
		Descent:   -descent,
		LineGap:   max(0, fromFixed(m.Height)-ascent-descent),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

func xHinting(h Hinting) font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// toFixed rounds to the nearest 1/64, as opentype.NewFace does with its
// scale.
func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
