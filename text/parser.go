package text

import (
	"fmt"
	"sync"
)

// FontParser turns SFNT data into a ParsedFont. NewFontSource unwraps
// WOFF before calling Parse, so parsers only see TrueType or OpenType.
type FontParser interface {
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the per-glyph view of a font that faces measure with.
//
// Every size-dependent method takes the ppem and hinting of the calling
// face and must agree with what Draw paints for the same arguments.
type ParsedFont interface {
	// Name returns the family name, or "" if the font has none.
	Name() string

	// FullName returns the full font name, or "".
	FullName() string

	NumGlyphs() int
	UnitsPerEm() int

	// GlyphIndex maps r to a glyph, 0 (.notdef) if the font lacks it.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the horizontal advance of a glyph in pixels.
	GlyphAdvance(glyph uint16, ppem float64, h Hinting) float64

	// GlyphBounds returns the ink box of a glyph relative to its origin,
	// y growing downwards.
	GlyphBounds(glyph uint16, ppem float64, h Hinting) Rect

	// Kern returns the adjustment between two adjacent glyphs, 0 when the
	// font has no kerning for the pair.
	Kern(left, right uint16, ppem float64, h Hinting) float64

	// Metrics returns the line metrics at ppem.
	Metrics(ppem float64, h Hinting) FontMetrics
}

// FontMetrics holds line metrics as a parser reports them, with Descent
// negative below the baseline.
type FontMetrics struct {
	Ascent    float64
	Descent   float64
	LineGap   float64
	XHeight   float64
	CapHeight float64
}

// Height returns ascent - descent + line gap.
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

const defaultParserName = "ximage"

var (
	parsersMu sync.RWMutex
	parsers   = map[string]FontParser{
		defaultParserName: ximageParser{},
	}
)

// RegisterParser makes a parser available to WithParser under name,
// replacing any parser already registered there.
func RegisterParser(name string, p FontParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = p
}

func lookupParser(name string) (FontParser, error) {
	if name == "" {
		name = defaultParserName
	}
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	p, ok := parsers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}
