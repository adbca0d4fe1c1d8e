package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Description is the family name and aspect (style, weight, stretch)
// declared by a font file.
type Description struct {
	Family string
	Aspect font.Aspect
}

// describe reads the family and aspect of SFNT data with
// go-text/typesetting, which also understands OS/2 weight classes and
// style-name fallbacks.
func describe(sfnt []byte) (Description, error) {
	face, err := font.ParseTTF(bytes.NewReader(sfnt))
	if err != nil {
		return Description{}, fmt.Errorf("text: failed to describe font: %w", err)
	}
	d := face.Describe()
	return Description{Family: d.Family, Aspect: d.Aspect}, nil
}
