package fontface

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for fontface package.
var (
	// ErrNoFontFound is returned when a local() source matches no
	// installed font.
	ErrNoFontFound = errors.New("fontface: no matching system font")

	// ErrResponseTooLarge is returned when fetched font data exceeds the
	// fetcher's size limit.
	ErrResponseTooLarge = errors.New("fontface: font data exceeds size limit")

	// ErrUnsupportedScheme is returned for URLs whose scheme the fetcher
	// cannot resolve.
	ErrUnsupportedScheme = errors.New("fontface: unsupported URL scheme")

	// ErrInvalidDataURL is returned for malformed data: URLs.
	ErrInvalidDataURL = errors.New("fontface: invalid data URL")
)

// HTTPStatusError is returned when a remote font responds with a
// non-success status code.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("fontface: GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// LoadError describes a failed FontFace load.
type LoadError struct {
	Family string
	Source Source
	Err    error
}

func (e *LoadError) Error() string {
	family := e.Family
	if family == "" {
		family = "<unnamed>"
	}
	return fmt.Sprintf("fontface: failed to load %q from %s: %v", family, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
