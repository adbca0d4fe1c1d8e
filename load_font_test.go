package sketch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sketch/fontface"
)

// goFetcher serves the Go Regular font for any path ending in a font
// extension and fails for everything else.
var goFetcher = fontface.FetcherFunc(func(_ context.Context, path string) ([]byte, error) {
	if _, ok := FontNameFromPath(path); ok {
		return goregular.TTF, nil
	}
	return nil, errors.New("not found")
})

func TestFontNameFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"assets/Inter-Regular.ttf", "Inter-Regular", true},
		{"Roboto.OTF", "Roboto", true},
		{"https://example.com/fonts/Lato.woff?v=3", "Lato", true},
		{"fonts/Noto.Sans.woff2#frag", "Noto", true},
		{"/abs/path/font.WoFf", "font", true},
		{"fonts/readme.txt", "", false},
		{"fonts/ttf", "", false},
		{"data:font/ttf;base64,AAEAAA", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FontNameFromPath(tt.path)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FontNameFromPath(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLoadFont(t *testing.T) {
	reg := &recordingRegistry{}
	rep := &recordingReporter{}
	s := NewSketch(10, 10, WithFetcher(goFetcher), WithFontRegistry(reg), WithReporter(rep))

	var succeeded *fontface.FontFace
	face, err := s.LoadFont(context.Background(), FontRequest{
		Path:      "assets/Go-Regular.ttf",
		OnSuccess: func(f *fontface.FontFace) { succeeded = f },
		OnError:   func(err error) { t.Errorf("OnError called: %v", err) },
	})
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}

	if face.Family() != "Go-Regular" {
		t.Errorf("Family() = %q, want %q", face.Family(), "Go-Regular")
	}
	if face.Src().String() != "url(assets/Go-Regular.ttf)" {
		t.Errorf("Src() = %v", face.Src())
	}
	if face.Status() != fontface.StatusLoaded {
		t.Errorf("Status() = %v, want loaded", face.Status())
	}
	if succeeded != face {
		t.Error("OnSuccess did not receive the loaded face")
	}
	if added := reg.added(); len(added) != 1 || added[0] != face {
		t.Errorf("registry holds %d faces, want the loaded face", len(added))
	}
	if reports := rep.all(); len(reports) != 0 {
		t.Errorf("unexpected diagnostics: %+v", reports)
	}
}

func TestLoadFontExplicitName(t *testing.T) {
	rep := &recordingReporter{}
	s := NewSketch(10, 10, WithFetcher(fontface.FetcherFunc(func(context.Context, string) ([]byte, error) {
		return goregular.TTF, nil
	})), WithReporter(rep))

	face, err := s.LoadFont(context.Background(), FontRequest{
		Path:    "fonts/download?id=42",
		Name:    "Go",
		Options: fontface.Descriptors{Display: fontface.DisplaySwap},
	})
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	if face.Family() != "Go" {
		t.Errorf("Family() = %q, want %q", face.Family(), "Go")
	}
	if face.Descriptors().Display != fontface.DisplaySwap {
		t.Error("descriptors were not passed to the face")
	}
	if reports := rep.all(); len(reports) != 0 {
		t.Errorf("an explicit name should not produce diagnostics: %+v", reports)
	}
}

func TestLoadFontUnsupportedExtension(t *testing.T) {
	rep := &recordingReporter{}
	reg := &recordingRegistry{}
	s := NewSketch(10, 10, WithFetcher(fontface.FetcherFunc(func(context.Context, string) ([]byte, error) {
		return goregular.TTF, nil
	})), WithReporter(rep), WithFontRegistry(reg))

	face, err := s.LoadFont(context.Background(), FontRequest{Path: "fonts/download?id=42"})
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	if face.Family() != "" {
		t.Errorf("Family() = %q, want empty", face.Family())
	}
	if len(reg.added()) != 1 {
		t.Error("unnamed face should still be registered")
	}

	want := []friendlyReport{{Message: invalidFontMessage, Fn: loadFontLabel}}
	if diff := cmp.Diff(want, rep.all()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFontEmptyPath(t *testing.T) {
	rep := &recordingReporter{}
	reg := &recordingRegistry{}
	s := NewSketch(10, 10, WithReporter(rep), WithFontRegistry(reg))

	var gotErr error
	face, err := s.LoadFont(context.Background(), FontRequest{OnError: func(err error) { gotErr = err }})
	if !errors.Is(err, ErrInvalidFontPath) {
		t.Fatalf("LoadFont() error = %v, want ErrInvalidFontPath", err)
	}
	if face != nil {
		t.Error("LoadFont() returned a face for an empty path")
	}
	if gotErr != ErrInvalidFontPath {
		t.Errorf("OnError received %v, want %v", gotErr, ErrInvalidFontPath)
	}
	if len(reg.added()) != 0 {
		t.Error("nothing should be registered for an empty path")
	}

	want := []friendlyReport{
		{Message: invalidFontMessage, Fn: loadFontLabel},
		{Code: FileLoadFont, Path: "", File: true},
	}
	if diff := cmp.Diff(want, rep.all()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFontFailure(t *testing.T) {
	rep := &recordingReporter{}
	s := NewSketch(10, 10, WithFetcher(goFetcher), WithReporter(rep))

	var onError error
	face, err := s.LoadFont(context.Background(), FontRequest{
		Path:      "fonts/missing.bin",
		OnSuccess: func(*fontface.FontFace) { t.Error("OnSuccess called on failure") },
		OnError:   func(err error) { onError = err },
	})
	if err == nil {
		t.Fatal("LoadFont() error = nil, want error")
	}
	if face != nil {
		t.Error("LoadFont() returned a face on failure")
	}
	var loadErr *fontface.LoadError
	if !errors.As(onError, &loadErr) || onError != error(loadErr) {
		t.Errorf("OnError received %v, want the *fontface.LoadError itself", onError)
	}
	if !errors.Is(err, onError) || err == onError {
		t.Errorf("LoadFont() error = %v, want a wrap of the OnError error", err)
	}

	want := []friendlyReport{
		{Message: invalidFontMessage, Fn: loadFontLabel},
		{Code: FileLoadFont, Path: "fonts/missing.bin", File: true},
	}
	if diff := cmp.Diff(want, rep.all()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFontInvalidData(t *testing.T) {
	s := NewSketch(10, 10, WithFetcher(fontface.FetcherFunc(func(context.Context, string) ([]byte, error) {
		return []byte("<html>404</html>"), nil
	})), WithReporter(&recordingReporter{}))

	_, err := s.LoadFont(context.Background(), FontRequest{Path: "broken.ttf"})
	if err == nil {
		t.Fatal("LoadFont() error = nil for non-font data")
	}
}

func TestLoadFontHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fonts/Go.ttf" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "font/ttf")
		_, _ = w.Write(goregular.TTF)
	}))
	defer srv.Close()

	set := &fontface.FontSet{}
	s := NewSketch(10, 10,
		WithFetcher(&fontface.ResourceFetcher{Client: srv.Client()}),
		WithFontRegistry(set),
		WithReporter(&recordingReporter{}),
	)

	face, err := s.LoadFont(context.Background(), FontRequest{Path: srv.URL + "/fonts/Go.ttf"})
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	if got, ok := set.Lookup("go", fontface.Descriptors{}.Aspect()); !ok || got != face {
		t.Error("loaded face is not found in the font set")
	}

	_, err = s.LoadFont(context.Background(), FontRequest{Path: srv.URL + "/fonts/Missing.ttf"})
	var statusErr *fontface.HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("LoadFont(missing) error = %v, want 404 HTTPStatusError", err)
	}
}

func TestLoadFontAsync(t *testing.T) {
	s := NewSketch(10, 10, WithFetcher(goFetcher), WithReporter(&recordingReporter{}))
	ctx := context.Background()

	t.Run("resolves", func(t *testing.T) {
		res, ok := receive(t, s.LoadFontAsync(ctx, FontRequest{Path: "Go.ttf"}))
		if !ok {
			t.Fatal("channel closed without a result")
		}
		if res.Err != nil || res.Face == nil || res.Face.Family() != "Go" {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("OnSuccess runs before the result is delivered", func(t *testing.T) {
		called := make(chan *fontface.FontFace, 1)
		res, ok := receive(t, s.LoadFontAsync(ctx, FontRequest{
			Path:      "Go.ttf",
			OnSuccess: func(f *fontface.FontFace) { called <- f },
		}))
		if !ok || res.Face == nil {
			t.Fatalf("result = %+v, %v, want a face", res, ok)
		}
		select {
		case f := <-called:
			if f != res.Face {
				t.Error("OnSuccess received a different face than the result")
			}
		default:
			t.Error("OnSuccess had not run when the result arrived")
		}
	})

	t.Run("rejects without OnError", func(t *testing.T) {
		res, ok := receive(t, s.LoadFontAsync(ctx, FontRequest{Path: "missing.bin"}))
		if !ok {
			t.Fatal("channel closed without a result")
		}
		if res.Err == nil || res.Face != nil {
			t.Errorf("result = %+v, want error", res)
		}
	})

	t.Run("handled by OnError", func(t *testing.T) {
		handled := make(chan error, 1)
		_, ok := receive(t, s.LoadFontAsync(ctx, FontRequest{
			Path:    "missing.bin",
			OnError: func(err error) { handled <- err },
		}))
		if ok {
			t.Error("channel delivered a value after OnError handled the failure")
		}
		select {
		case err := <-handled:
			var loadErr *fontface.LoadError
			if !errors.As(err, &loadErr) {
				t.Errorf("OnError received %v, want a *fontface.LoadError", err)
			}
		default:
			t.Error("OnError was not called")
		}
	})
}

func receive(t *testing.T, ch <-chan FontResult) (FontResult, bool) {
	t.Helper()
	select {
	case res, ok := <-ch:
		return res, ok
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for LoadFontAsync")
		return FontResult{}, false
	}
}
