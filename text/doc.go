// Package text provides fonts and text measurement for sketch renderers.
//
// The text pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (TTF, OTF and WOFF data)
//   - Face: Lightweight font instance at a specific size
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//
// WOFF containers are decoded with github.com/go-text/typesetting and
// turned back into plain SFNT data before parsing, so every parser backend
// only ever sees TrueType or OpenType bytes. The same library supplies the
// family name and aspect reported by FontSource.Description.
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Inter-Bold.woff")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(24)
//	text.Draw(img, "Hello", face, 10, 40, color.Black)
//
// # Wrapping
//
// WrapText breaks text into lines no wider than a maximum width, at
// Unicode line break opportunities (WrapWord) or between any two grapheme
// clusters (WrapChar). Break opportunities come from the go-text
// segmenter.
//
// # Measuring and drawing
//
// Face.Advance, Face.Bounds and Draw place glyphs with the same pen walk,
// hinting and kerning, so a measured box is the box that gets painted.
// Faces are unhinted unless created WithHinting.
package text
