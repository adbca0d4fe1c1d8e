package fontface

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontSetMembership(t *testing.T) {
	a := New("A", Data(goregular.TTF), Descriptors{})
	b := New("B", Data(goregular.TTF), Descriptors{})

	s := NewFontSet(a, nil, a)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	s.Add(b)
	s.Add(nil)
	if got := s.Faces(); !slices.Equal(got, []*FontFace{a, b}) {
		t.Errorf("Faces() = %v, want [a b]", got)
	}
	if !s.Has(b) {
		t.Error("Has(b) = false")
	}

	if !s.Delete(a) {
		t.Error("Delete(a) = false, want true")
	}
	if s.Delete(a) {
		t.Error("second Delete(a) = true, want false")
	}
	if s.Has(a) {
		t.Error("Has(a) = true after Delete")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear", s.Len())
	}
}

func TestFontSetZeroValue(t *testing.T) {
	var s FontSet
	f := New("A", Data(goregular.TTF), Descriptors{})
	s.Add(f)
	if !s.Has(f) {
		t.Error("zero FontSet should accept faces")
	}
}

func TestFontSetFacesIsCopy(t *testing.T) {
	f := New("A", Data(goregular.TTF), Descriptors{})
	s := NewFontSet(f)

	faces := s.Faces()
	faces[0] = nil
	if !s.Has(f) {
		t.Error("modifying Faces() result changed the set")
	}
}

func TestFontSetLookup(t *testing.T) {
	regular := New("Open Sans", Data(goregular.TTF), Descriptors{})
	bold := New("Open Sans", Data(goregular.TTF), Descriptors{Weight: font.WeightBold})
	italic := New("Open Sans", Data(goregular.TTF), Descriptors{Style: font.StyleItalic})
	other := New("Other", Data(goregular.TTF), Descriptors{})
	s := NewFontSet(regular, bold, italic, other)

	tests := []struct {
		name   string
		family string
		aspect font.Aspect
		want   *FontFace
	}{
		{"regular", "Open Sans", Descriptors{}.Aspect(), regular},
		{"normalized family", "opensans", Descriptors{}.Aspect(), regular},
		{"bold", "Open Sans", Descriptors{Weight: font.WeightBold}.Aspect(), bold},
		{"semibold prefers bold", "Open Sans", Descriptors{Weight: font.WeightSemibold}.Aspect(), bold},
		{"italic", "open sans", Descriptors{Style: font.StyleItalic}.Aspect(), italic},
		{"bold italic prefers style", "Open Sans", Descriptors{Style: font.StyleItalic, Weight: font.WeightBold}.Aspect(), italic},
		{"missing", "Inter", Descriptors{}.Aspect(), nil},
		{"empty", "", Descriptors{}.Aspect(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Lookup(tt.family, tt.aspect)
			if ok != (tt.want != nil) {
				t.Fatalf("Lookup() ok = %v", ok)
			}
			if got != tt.want {
				t.Errorf("Lookup() = %p, want %p", got, tt.want)
			}
		})
	}
}

func TestFontSetLoad(t *testing.T) {
	a := New("Go", Data(goregular.TTF), Descriptors{})
	b := New("Go", Data(goregular.TTF), Descriptors{Weight: font.WeightBold})
	c := New("Unrelated", Data(nil), Descriptors{})
	s := NewFontSet(a, b, c)

	got, err := s.Load(context.Background(), "go")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(got, []*FontFace{a, b}) {
		t.Errorf("Load() = %v, want [a b]", got)
	}
	if a.Status() != StatusLoaded || b.Status() != StatusLoaded {
		t.Errorf("statuses = %v, %v; want loaded", a.Status(), b.Status())
	}
	if c.Status() != StatusUnloaded {
		t.Errorf("unrelated face status = %v, want %v", c.Status(), StatusUnloaded)
	}

	if _, err := s.Load(context.Background(), "Inter"); !errors.Is(err, ErrNoFontFound) {
		t.Errorf("Load(missing) error = %v, want ErrNoFontFound", err)
	}
	if _, err := s.Load(context.Background(), "Unrelated"); err == nil {
		t.Error("Load(broken) error = nil, want error")
	}
}

func TestFontSetReady(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	slow := New("Slow", URL("slow.ttf"), Descriptors{}, WithFetcher(FetcherFunc(func(context.Context, string) ([]byte, error) {
		close(started)
		<-release
		return goregular.TTF, nil
	})))
	idle := New("Idle", Data(goregular.TTF), Descriptors{})
	s := NewFontSet(slow, idle)

	go func() { _ = slow.Load(context.Background()) }()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := s.Ready(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Ready() while loading error = %v, want DeadlineExceeded", err)
	}

	close(release)
	if err := s.Ready(context.Background()); err != nil {
		t.Errorf("Ready() error = %v", err)
	}
	if slow.Status() != StatusLoaded {
		t.Errorf("Status() = %v, want %v", slow.Status(), StatusLoaded)
	}
}
