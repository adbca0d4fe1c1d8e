package sketch

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gogpu/sketch/fontface"
)

const (
	loadFontLabel      = "sketch.LoadFont"
	invalidFontMessage = "Sorry, only TTF, OTF, WOFF and WOFF2 font files are supported."
)

var fontExtensions = []string{".ttf", ".otf", ".woff", ".woff2"}

// FontRequest describes a font to load.
type FontRequest struct {
	// Path is a file path or a file://, http(s):// or data: URL.
	Path string

	// Name is the family name to register the font under. When empty it
	// is derived from the file name of Path.
	Name string

	// OnSuccess, if set, is called with the loaded face.
	OnSuccess func(*fontface.FontFace)

	// OnError, if set, is called with the load error.
	OnError func(error)

	// Options are the descriptors of the face.
	Options fontface.Descriptors
}

// FontResult is the outcome delivered by LoadFontAsync.
type FontResult struct {
	Face *fontface.FontFace
	Err  error
}

// LoadFont loads the font described by req, adds it to the font registry
// and returns it once loaded.
//
// Requests with an empty path, or with no Name and a path that does not
// end in .ttf, .otf, .woff or .woff2, get a friendly diagnostic. An
// unnamed face is still loaded and registered under an empty family.
//
// On failure a friendly file-load diagnostic is reported and OnError, if
// set, receives the underlying error. The returned error wraps it.
func (s *Sketch) LoadFont(ctx context.Context, req FontRequest) (*fontface.FontFace, error) {
	if req.Path == "" {
		s.reporter.FriendlyError(invalidFontMessage, loadFontLabel)
		return nil, s.fontLoadFailed(req, ErrInvalidFontPath)
	}

	name := req.Name
	if name == "" {
		var ok bool
		if name, ok = FontNameFromPath(req.Path); !ok {
			s.reporter.FriendlyError(invalidFontMessage, loadFontLabel)
		}
	}

	face := fontface.New(name, fontface.URL(req.Path), req.Options, fontface.WithFetcher(s.fetcher))
	s.fonts.Add(face)

	Logger().Debug("sketch: loading font", "name", name, "path", req.Path)
	if err := face.Load(ctx); err != nil {
		return nil, s.fontLoadFailed(req, err)
	}

	if req.OnSuccess != nil {
		req.OnSuccess(face)
	}
	return face, nil
}

func (s *Sketch) fontLoadFailed(req FontRequest, err error) error {
	s.reporter.FriendlyFileLoadError(FileLoadFont, req.Path)
	if req.OnError != nil {
		req.OnError(err)
	}
	return fmt.Errorf("sketch: failed to load font: %w", err)
}

// LoadFontAsync runs LoadFont on a new goroutine. The returned channel
// receives FontResult{Face} on success. On failure it receives
// FontResult{Err} when req has no OnError callback; with one, the error
// is considered handled and the channel is closed without a value.
//
// The callbacks run on the loading goroutine.
func (s *Sketch) LoadFontAsync(ctx context.Context, req FontRequest) <-chan FontResult {
	ch := make(chan FontResult, 1)
	go func() {
		defer close(ch)
		face, err := s.LoadFont(ctx, req)
		if err != nil {
			if req.OnError == nil {
				ch <- FontResult{Err: err}
			}
			return
		}
		ch <- FontResult{Face: face}
	}()
	return ch
}

// FontNameFromPath derives a family name from a font path: the last path
// segment up to its first dot. It reports false when the path, ignoring
// any query or fragment, does not end in a supported font extension.
func FontNameFromPath(p string) (string, bool) {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	lower := strings.ToLower(p)
	supported := false
	for _, ext := range fontExtensions {
		if strings.HasSuffix(lower, ext) {
			supported = true
			break
		}
	}
	if !supported {
		return "", false
	}

	name, _, _ := strings.Cut(path.Base(p), ".")
	return name, true
}
