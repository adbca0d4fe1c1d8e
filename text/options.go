package text

// Hinting selects how glyph outlines and advances snap to the pixel grid.
// A face measures and draws with the same hinting, so the widths it
// reports are the widths it paints.
type Hinting int

const (
	// HintingNone keeps fractional advances and outlines. This is the
	// default.
	HintingNone Hinting = iota
	// HintingVertical snaps vertical metrics only.
	HintingVertical
	// HintingFull snaps advances and outlines to whole pixels.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// SourceOption configures NewFontSource.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parser string
}

// WithParser parses the font with the backend registered under name.
// The default is "ximage", backed by golang.org/x/image/font/opentype.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parser = name
	}
}

// FaceOption configures FontSource.Face.
type FaceOption func(*faceConfig)

type faceConfig struct {
	hinting Hinting
}

// WithHinting sets the hinting used to measure and draw with the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
