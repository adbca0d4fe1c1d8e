package sketch

import (
	"github.com/gogpu/sketch/fontface"
	"github.com/gogpu/sketch/text"
)

// TextFunctions lists the text operations every renderer provides, by
// their sketch-facing names. Sketch forwards each of them to its renderer
// through the exported method of the same name.
var TextFunctions = []string{
	"text",
	"textAlign",
	"textAscent",
	"textBounds",
	"textDescent",
	"textLeading",
	"textFont",
	"textSize",
	"textStyle",
	"textWidth",
	"textWrap",
}

// TextRenderer is the text capability of a renderer.
//
// Setters take their value as an optional trailing argument and always
// return the current value, so calling one with no arguments is a query.
type TextRenderer interface {
	// Text draws s with its anchor at (x, y). An optional box of
	// maxWidth[, maxHeight] wraps the text to maxWidth and clips lines
	// below maxHeight.
	Text(s string, x, y float64, box ...float64)

	// TextAlign sets the horizontal and, optionally, vertical alignment.
	TextAlign(align ...Align) Alignment

	// TextAscent returns the ascent of the current font at the current
	// size, or the tallest extent above the baseline of s when given.
	TextAscent(s ...string) float64

	// TextBounds returns the box s would cover if drawn at (x, y).
	TextBounds(s string, x, y float64, box ...float64) Bounds

	// TextDescent is TextAscent below the baseline.
	TextDescent(s ...string) float64

	// TextLeading sets the distance between baselines, in pixels.
	TextLeading(leading ...float64) float64

	// TextFont sets the current font and, optionally, its size.
	// A nil font leaves the font unchanged.
	TextFont(font *fontface.FontFace, size ...float64) *fontface.FontFace

	// TextSize sets the font size in pixels. Setting it resets the
	// leading to 1.25 times the size.
	TextSize(size ...float64) float64

	// TextStyle selects the normal, italic, bold or bold italic face of
	// the current family.
	TextStyle(style ...Style) Style

	// TextWidth returns the advance width of the widest line of s.
	TextWidth(s string) float64

	// TextWrap sets how boxed text breaks into lines.
	TextWrap(mode ...text.WrapMode) text.WrapMode
}

// Align positions text relative to its anchor.
type Align int

// Horizontal alignments come first, then vertical ones. AlignCenter is
// valid on both axes.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignTop
	AlignBottom
	AlignBaseline
)

var alignNames = [...]string{"left", "center", "right", "top", "bottom", "baseline"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "unknown"
	}
	return alignNames[a]
}

// Horizontal reports whether a is valid as a horizontal alignment.
func (a Align) Horizontal() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// Vertical reports whether a is valid as a vertical alignment.
func (a Align) Vertical() bool {
	return a == AlignTop || a == AlignCenter || a == AlignBottom || a == AlignBaseline
}

// Alignment is the pair of current alignments.
type Alignment struct {
	Horizontal Align
	Vertical   Align
}

// Style selects a face of the current font family.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleBold
	StyleBoldItalic
)

var styleNames = [...]string{"normal", "italic", "bold", "bold italic"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// Bounds is an axis-aligned box in pixel coordinates, y growing down.
type Bounds struct {
	X, Y, W, H float64
}
