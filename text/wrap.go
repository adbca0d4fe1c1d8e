package text

import (
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// WrapMode selects where WrapText may end a line that is too wide.
type WrapMode uint8

const (
	// WrapWord ends lines at Unicode line break opportunities (UAX #14):
	// after spaces and hyphens, between ideographs. A word wider than the
	// line overflows it. This is the zero value.
	WrapWord WrapMode = iota

	// WrapChar ends lines between any two grapheme clusters.
	WrapChar

	// WrapNone ends lines at hard line breaks only.
	WrapNone
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapNone:
		return "None"
	default:
		return unknownStr
	}
}

// WrapResult is one line produced by WrapText.
type WrapResult struct {
	// Text is the line without the whitespace it was broken at.
	Text string
	// Start and End are the byte offsets of Text in the wrapped string.
	Start, End int
}

// WrapText breaks text into lines no wider than maxWidth when measured
// with face.
//
// Hard line breaks (\n, \r\n, \r) always end a line and belong to no
// line, so an empty paragraph yields an empty line. Lines of wrapped
// paragraphs lose their trailing whitespace. A non-positive maxWidth only
// splits at hard breaks.
func WrapText(text string, face Face, maxWidth float64, mode WrapMode) []WrapResult {
	var (
		lines []WrapResult
		seg   segmenter.Segmenter
	)
	forEachParagraph(text, func(start, end int) {
		para := text[start:end]
		if mode == WrapNone || maxWidth <= 0 || face == nil || para == "" {
			lines = append(lines, WrapResult{Text: para, Start: start, End: end})
			return
		}
		lines = wrapParagraph(lines, &seg, para, start, face, maxWidth, mode)
	})
	return lines
}

// wrapParagraph appends the lines of para, which starts at byte offset
// base of the wrapped text, to lines. Lines are filled greedily, one
// break segment at a time, each candidate measured as a whole so that
// kerning across segments counts.
func wrapParagraph(lines []WrapResult, seg *segmenter.Segmenter, para string, base int, face Face, maxWidth float64, mode WrapMode) []WrapResult {
	emit := func(from, to int) {
		s := strings.TrimRightFunc(para[from:to], unicode.IsSpace)
		lines = append(lines, WrapResult{Text: s, Start: base + from, End: base + from + len(s)})
	}

	start, end := 0, 0 // bytes of the current line accepted so far
	for _, brk := range breakOffsets(seg, para, mode) {
		candidate := strings.TrimRightFunc(para[start:brk], unicode.IsSpace)
		if end > start && face.Advance(candidate) > maxWidth {
			emit(start, end)
			start = skipSpace(para, end, brk)
		}
		end = brk
	}
	if start < len(para) || end == 0 {
		emit(start, len(para))
	}
	return lines
}

// breakOffsets returns the byte offsets in para after which a line may
// end, in increasing order and always including len(para).
func breakOffsets(seg *segmenter.Segmenter, para string, mode WrapMode) []int {
	// The segmenter counts runes, invalid UTF-8 bytes included as U+FFFD,
	// exactly as ranging over the string does.
	runeOffsets := make([]int, 0, len(para)+1)
	for i := range para {
		runeOffsets = append(runeOffsets, i)
	}
	runeOffsets = append(runeOffsets, len(para))

	seg.InitWithString(para)
	var offsets []int
	if mode == WrapChar {
		it := seg.GraphemeIterator()
		for it.Next() {
			g := it.Grapheme()
			offsets = append(offsets, runeOffsets[g.Offset+len(g.Text)])
		}
	} else {
		it := seg.LineIterator()
		for it.Next() {
			l := it.Line()
			offsets = append(offsets, runeOffsets[l.Offset+len(l.Text)])
		}
	}
	return offsets
}

// skipSpace returns the first offset in [from, limit) of para that is not
// whitespace, or limit.
func skipSpace(para string, from, limit int) int {
	if i := strings.IndexFunc(para[from:limit], func(r rune) bool { return !unicode.IsSpace(r) }); i >= 0 {
		return from + i
	}
	return limit
}

// forEachParagraph calls fn with the byte range of every paragraph of
// text, the separators excluded. Empty text is one empty paragraph.
func forEachParagraph(text string, fn func(start, end int)) {
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			fn(start, i)
			start = i + 1
		case '\r':
			fn(start, i)
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	fn(start, len(text))
}

// MeasureText returns the advance of the widest line of text, splitting
// at hard line breaks only.
func MeasureText(text string, face Face) float64 {
	if face == nil {
		return 0
	}
	var width float64
	forEachParagraph(text, func(start, end int) {
		width = max(width, face.Advance(text[start:end]))
	})
	return width
}
