package sketch

import (
	"github.com/gogpu/sketch/fontface"
	"github.com/gogpu/sketch/text"
)

// Each text function validates its arguments, reporting a mismatch as a
// friendly diagnostic, and then forwards them unchanged to the renderer.
// Results come back unchanged as well.

// Text draws s at (x, y). See TextRenderer.Text.
func (s *Sketch) Text(str string, x, y float64, box ...float64) {
	s.validate("text", appendArgs([]any{str, x, y}, box)...)
	s.renderer.Text(str, x, y, box...)
}

// TextAlign sets or queries the text alignment.
func (s *Sketch) TextAlign(align ...Align) Alignment {
	s.validate("textAlign", appendArgs(nil, align)...)
	return s.renderer.TextAlign(align...)
}

// TextAscent returns the ascent of the current font.
func (s *Sketch) TextAscent(str ...string) float64 {
	s.validate("textAscent", appendArgs(nil, str)...)
	return s.renderer.TextAscent(str...)
}

// TextBounds returns the box str covers when drawn at (x, y).
func (s *Sketch) TextBounds(str string, x, y float64, box ...float64) Bounds {
	s.validate("textBounds", appendArgs([]any{str, x, y}, box)...)
	return s.renderer.TextBounds(str, x, y, box...)
}

// TextDescent returns the descent of the current font.
func (s *Sketch) TextDescent(str ...string) float64 {
	s.validate("textDescent", appendArgs(nil, str)...)
	return s.renderer.TextDescent(str...)
}

// TextLeading sets or queries the line spacing.
func (s *Sketch) TextLeading(leading ...float64) float64 {
	s.validate("textLeading", appendArgs(nil, leading)...)
	return s.renderer.TextLeading(leading...)
}

// TextFont sets or queries the current font. Call TextFont(nil) to query.
func (s *Sketch) TextFont(font *fontface.FontFace, size ...float64) *fontface.FontFace {
	var args []any
	if font != nil || len(size) > 0 {
		args = appendArgs([]any{font}, size)
	}
	s.validate("textFont", args...)
	return s.renderer.TextFont(font, size...)
}

// TextSize sets or queries the font size.
func (s *Sketch) TextSize(size ...float64) float64 {
	s.validate("textSize", appendArgs(nil, size)...)
	return s.renderer.TextSize(size...)
}

// TextStyle sets or queries the font style.
func (s *Sketch) TextStyle(style ...Style) Style {
	s.validate("textStyle", appendArgs(nil, style)...)
	return s.renderer.TextStyle(style...)
}

// TextWidth returns the width of the widest line of str.
func (s *Sketch) TextWidth(str string) float64 {
	s.validate("textWidth", str)
	return s.renderer.TextWidth(str)
}

// TextWrap sets or queries how boxed text wraps.
func (s *Sketch) TextWrap(mode ...text.WrapMode) text.WrapMode {
	s.validate("textWrap", appendArgs(nil, mode)...)
	return s.renderer.TextWrap(mode...)
}

func (s *Sketch) validate(fn string, args ...any) {
	if err := s.validator.Validate(fn, args); err != nil {
		s.reporter.FriendlyError(err.Error(), fn)
	}
}

func appendArgs[T any](args []any, rest []T) []any {
	for _, v := range rest {
		args = append(args, v)
	}
	return args
}
