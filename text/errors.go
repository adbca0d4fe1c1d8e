package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnsupportedFormat is returned for font containers that cannot be
	// decoded (WOFF2, collections, unknown signatures).
	ErrUnsupportedFormat = errors.New("text: unsupported font format")

	// ErrUnknownParser is returned by NewFontSource when WithParser names
	// a parser that was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")
)

// FormatError is returned when font data is in a container format
// the package cannot decode.
type FormatError struct {
	Format Format
}

func (e *FormatError) Error() string {
	return "text: unsupported font format " + e.Format.String()
}

// Unwrap returns ErrUnsupportedFormat so callers can use errors.Is.
func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}
