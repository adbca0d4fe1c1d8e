package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Draw paints text onto dst with its baseline origin at (x, y). Glyphs
// land exactly where face.Advance and face.Bounds put them.
//
// Faces of sources parsed by a custom FontParser cannot be rasterized and
// are ignored.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) {
	sf, ok := face.(*sourceFace)
	if !ok || text == "" {
		return
	}
	p, ok := sf.source.Parsed().(*ximageFont)
	if !ok {
		return
	}

	ot, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    sf.size,
		DPI:     72,
		Hinting: xHinting(sf.hinting),
	})
	if err != nil {
		return
	}
	defer func() {
		_ = ot.Close()
	}()

	src := image.NewUniform(col)
	dotY := toFixed(y)
	sf.pen(p, text, func(r rune, _ uint16, pen float64) {
		dot := fixed.Point26_6{X: toFixed(x + pen), Y: dotY}
		dr, mask, mp, _, ok := ot.Glyph(dot, r)
		if ok && !dr.Empty() {
			draw.DrawMask(dst, dr, src, image.Point{}, mask, mp, draw.Over)
		}
	})
}

// Measure returns the advance of text and the line height of face.
func Measure(text string, face Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}
	return face.Advance(text), face.Metrics().LineHeight()
}
