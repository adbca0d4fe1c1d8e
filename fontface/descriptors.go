package fontface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/font"
)

// Display controls how a face behaves while it is loading, mirroring the
// CSS font-display descriptor. It is recorded for renderers; loading
// itself does not depend on it.
type Display int

const (
	DisplayAuto Display = iota
	DisplayBlock
	DisplaySwap
	DisplayFallback
	DisplayOptional
)

var displayNames = [...]string{"auto", "block", "swap", "fallback", "optional"}

func (d Display) String() string {
	if d < 0 || int(d) >= len(displayNames) {
		return "unknown"
	}
	return displayNames[d]
}

// RuneRange is an inclusive range of code points.
type RuneRange struct {
	Lo, Hi rune
}

// Descriptors are the loader options of a FontFace: the aspect it
// provides within its family and the code points it covers.
// The zero value describes a normal, regular, full-width face covering
// every code point.
type Descriptors struct {
	Style        font.Style
	Weight       font.Weight
	Stretch      font.Stretch
	UnicodeRange []RuneRange
	Display      Display
}

// Aspect returns the style, weight and stretch with defaults applied.
func (d Descriptors) Aspect() font.Aspect {
	a := font.Aspect{Style: d.Style, Weight: d.Weight, Stretch: d.Stretch}
	if a.Style == 0 {
		a.Style = font.StyleNormal
	}
	if a.Weight == 0 {
		a.Weight = font.WeightNormal
	}
	if a.Stretch == 0 {
		a.Stretch = font.StretchNormal
	}
	return a
}

// Covers reports whether r falls in the face's unicode range.
func (d Descriptors) Covers(r rune) bool {
	if len(d.UnicodeRange) == 0 {
		return true
	}
	for _, rr := range d.UnicodeRange {
		if r >= rr.Lo && r <= rr.Hi {
			return true
		}
	}
	return false
}

// ParseDescriptors parses CSS-style descriptor values keyed by their
// FontFace option names: style, weight, stretch, unicodeRange, display.
// Unknown keys are ignored.
func ParseDescriptors(opts map[string]string) (Descriptors, error) {
	var (
		d   Descriptors
		err error
	)
	for key, value := range opts {
		value = strings.TrimSpace(strings.ToLower(value))
		switch key {
		case "style":
			d.Style, err = parseStyle(value)
		case "weight":
			d.Weight, err = parseWeight(value)
		case "stretch":
			d.Stretch, err = parseStretch(value)
		case "unicodeRange":
			d.UnicodeRange, err = ParseUnicodeRange(value)
		case "display":
			d.Display, err = parseDisplay(value)
		}
		if err != nil {
			return Descriptors{}, err
		}
	}
	return d, nil
}

func parseStyle(s string) (font.Style, error) {
	switch {
	case s == "normal":
		return font.StyleNormal, nil
	case s == "italic", strings.HasPrefix(s, "oblique"):
		return font.StyleItalic, nil
	}
	return 0, fmt.Errorf("fontface: invalid style %q", s)
}

func parseWeight(s string) (font.Weight, error) {
	switch s {
	case "normal":
		return font.WeightNormal, nil
	case "bold":
		return font.WeightBold, nil
	}
	w, err := strconv.ParseFloat(s, 32)
	if err != nil || w < 1 || w > 1000 {
		return 0, fmt.Errorf("fontface: invalid weight %q", s)
	}
	return font.Weight(w), nil
}

var stretchKeywords = map[string]font.Stretch{
	"ultra-condensed": font.StretchUltraCondensed,
	"extra-condensed": font.StretchExtraCondensed,
	"condensed":       font.StretchCondensed,
	"semi-condensed":  font.StretchSemiCondensed,
	"normal":          font.StretchNormal,
	"semi-expanded":   font.StretchSemiExpanded,
	"expanded":        font.StretchExpanded,
	"extra-expanded":  font.StretchExtraExpanded,
	"ultra-expanded":  font.StretchUltraExpanded,
}

func parseStretch(s string) (font.Stretch, error) {
	if v, ok := stretchKeywords[s]; ok {
		return v, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 32)
		if err == nil && v > 0 {
			return font.Stretch(v / 100), nil
		}
	}
	return 0, fmt.Errorf("fontface: invalid stretch %q", s)
}

func parseDisplay(s string) (Display, error) {
	for i, name := range displayNames {
		if s == name {
			return Display(i), nil
		}
	}
	return 0, fmt.Errorf("fontface: invalid display %q", s)
}

// ParseUnicodeRange parses a CSS unicode-range list such as
// "U+0000-00FF, U+0131, U+4??".
func ParseUnicodeRange(s string) ([]RuneRange, error) {
	var out []RuneRange
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rr, err := parseRuneRange(part)
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, nil
}

func parseRuneRange(s string) (RuneRange, error) {
	body, ok := strings.CutPrefix(strings.ToLower(s), "u+")
	if !ok {
		return RuneRange{}, fmt.Errorf("fontface: invalid unicode range %q", s)
	}

	if lo, hi, ok := strings.Cut(body, "-"); ok {
		l, err1 := parseCodePoint(lo)
		h, err2 := parseCodePoint(hi)
		if err1 != nil || err2 != nil || l > h {
			return RuneRange{}, fmt.Errorf("fontface: invalid unicode range %q", s)
		}
		return RuneRange{Lo: l, Hi: h}, nil
	}

	if strings.Contains(body, "?") {
		lo := strings.ReplaceAll(body, "?", "0")
		hi := strings.ReplaceAll(body, "?", "f")
		l, err1 := parseCodePoint(lo)
		h, err2 := parseCodePoint(hi)
		if err1 != nil || err2 != nil {
			return RuneRange{}, fmt.Errorf("fontface: invalid unicode range %q", s)
		}
		return RuneRange{Lo: l, Hi: h}, nil
	}

	r, err := parseCodePoint(body)
	if err != nil {
		return RuneRange{}, fmt.Errorf("fontface: invalid unicode range %q", s)
	}
	return RuneRange{Lo: r, Hi: r}, nil
}

func parseCodePoint(s string) (rune, error) {
	if s == "" || len(s) > 6 {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if v > 0x10FFFF {
		return 0, strconv.ErrRange
	}
	return rune(v), nil
}
