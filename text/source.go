package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	mu sync.RWMutex

	// data always holds plain SFNT bytes, even for WOFF input.
	data   []byte
	parsed ParsedFont
	format Format
	desc   Description
	name   string
}

// NewFontSource creates a FontSource from font data.
// TrueType, OpenType and WOFF data are accepted; WOFF2 and collections
// fail with an error matching ErrUnsupportedFormat.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var config sourceConfig
	for _, opt := range opts {
		opt(&config)
	}
	parser, err := lookupParser(config.parser)
	if err != nil {
		return nil, err
	}

	sfnt, format, err := toSFNT(data)
	if err != nil {
		return nil, err
	}

	// WOFF decoding already produced a private buffer. Parsers keep
	// referencing the slice they are given.
	if format != FormatWOFF {
		sfnt = append([]byte(nil), sfnt...)
	}

	parsed, err := parser.Parse(sfnt)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   sfnt,
		parsed: parsed,
		format: format,
	}
	s.addr = s

	// A font go-text cannot describe is still usable for drawing.
	if desc, err := describe(sfnt); err == nil {
		s.desc = desc
	}
	s.name = extractFontName(s.desc, parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (in pixels per em).
// Multiple faces can be created from the same FontSource.
//
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil - did you check the error from NewFontSource?")
	}
	s.copyCheck()

	var config faceConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &sourceFace{source: s, size: size, hinting: config.hinting}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Format returns the container format the font was loaded from.
func (s *FontSource) Format() Format {
	s.copyCheck()
	return s.format
}

// Description returns the family and aspect declared by the font.
func (s *FontSource) Description() Description {
	s.copyCheck()
	return s.desc
}

// Data returns the SFNT bytes backing the source. The slice must not be
// modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Parsed returns the parsed font for advanced operations.
// This is primarily used by Face implementations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName picks the best available family name.
func extractFontName(desc Description, parsed ParsedFont) string {
	if desc.Family != "" {
		return desc.Family
	}
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
