package fontface

import (
	"context"
	"math"
	"slices"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/sync/errgroup"
)

// FontSet is an ordered collection of faces, the registry sketches add
// their loaded fonts to. The zero value is an empty set ready to use.
//
// FontSet is safe for concurrent use.
type FontSet struct {
	mu    sync.RWMutex
	faces []*FontFace
}

// NewFontSet returns a set holding faces, skipping nils and duplicates.
func NewFontSet(faces ...*FontFace) *FontSet {
	s := &FontSet{}
	for _, f := range faces {
		s.Add(f)
	}
	return s
}

// Add appends f to the set. Adding nil or a face already present is a no-op.
func (s *FontSet) Add(f *FontFace) {
	if f == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.faces, f) {
		return
	}
	s.faces = append(s.faces, f)
}

// Delete removes f and reports whether it was present.
func (s *FontSet) Delete(f *FontFace) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.Index(s.faces, f)
	if i < 0 {
		return false
	}
	s.faces = slices.Delete(s.faces, i, i+1)
	return true
}

// Has reports whether f is in the set.
func (s *FontSet) Has(f *FontFace) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.faces, f)
}

// Clear removes every face.
func (s *FontSet) Clear() {
	s.mu.Lock()
	s.faces = nil
	s.mu.Unlock()
}

// Len returns the number of faces.
func (s *FontSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.faces)
}

// Faces returns the faces in insertion order.
func (s *FontSet) Faces() []*FontFace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.faces)
}

// Lookup returns the face of family whose descriptors best match aspect.
// Family names compare case- and space-insensitively. Among equally good
// matches the earliest added wins.
func (s *FontSet) Lookup(family string, aspect font.Aspect) (*FontFace, bool) {
	target := font.NormalizeFamily(family)
	if target == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best      *FontFace
		bestScore = math.Inf(1)
	)
	for _, f := range s.faces {
		if font.NormalizeFamily(f.family) != target {
			continue
		}
		if score := aspectDistance(f.desc.Aspect(), aspect); score < bestScore {
			best, bestScore = f, score
		}
	}
	return best, best != nil
}

// Load loads every face of family concurrently and returns the ones that
// loaded. It fails with the first load error, or ErrNoFontFound when the
// set has no face of that family.
func (s *FontSet) Load(ctx context.Context, family string) ([]*FontFace, error) {
	target := font.NormalizeFamily(family)

	var matched []*FontFace
	for _, f := range s.Faces() {
		if font.NormalizeFamily(f.family) == target {
			matched = append(matched, f)
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoFontFound
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range matched {
		g.Go(func() error {
			return f.Load(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matched, nil
}

// Ready blocks until no face in the set is loading, or ctx is done.
func (s *FontSet) Ready(ctx context.Context) error {
	for _, f := range s.Faces() {
		if f.Status() == StatusUnloaded {
			continue
		}
		select {
		case <-f.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
