package fontface

import "strconv"

// SourceKind identifies where a FontFace gets its data from.
type SourceKind int

const (
	// SourceURL fetches the font from a path or URL.
	SourceURL SourceKind = iota
	// SourceLocal looks the font up among installed system fonts.
	SourceLocal
	// SourceData uses font bytes supplied by the caller.
	SourceData
)

// Source is the font data descriptor of a FontFace, the equivalent of a
// CSS src value such as url(fonts/Inter.woff2) or local(Georgia).
type Source struct {
	kind  SourceKind
	value string
	data  []byte
}

// URL returns a source that fetches path. Paths may be plain file
// paths, file://, http://, https:// or data: URLs.
func URL(path string) Source {
	return Source{kind: SourceURL, value: path}
}

// Local returns a source that resolves an installed font by family name.
func Local(family string) Source {
	return Source{kind: SourceLocal, value: family}
}

// Data returns a source backed by in-memory font data.
// The slice must not be modified until the face is loaded.
func Data(b []byte) Source {
	return Source{kind: SourceData, data: b}
}

// Kind returns the source kind.
func (s Source) Kind() SourceKind {
	return s.kind
}

// Value returns the path of a URL source or the family of a Local source.
func (s Source) Value() string {
	return s.value
}

// String formats the source the way CSS writes it.
func (s Source) String() string {
	switch s.kind {
	case SourceLocal:
		return "local(" + s.value + ")"
	case SourceData:
		return "data(" + strconv.Itoa(len(s.data)) + " bytes)"
	default:
		return "url(" + s.value + ")"
	}
}
