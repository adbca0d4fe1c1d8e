package fontface

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// SystemResolver finds installed font data for local() sources.
type SystemResolver interface {
	Resolve(ctx context.Context, family string, aspect font.Aspect) ([]byte, error)
}

// SystemFonts resolves local() sources against the fonts installed on the
// machine, indexed with go-text/typesetting/fontscan. The index is built on
// first use and cached in CacheDir between runs.
type SystemFonts struct {
	// CacheDir stores the fontscan index. Empty means os.UserCacheDir.
	CacheDir string

	once       sync.Once
	footprints []fontscan.Footprint
	err        error
}

// Footprints returns the scanned system fonts.
func (s *SystemFonts) Footprints() ([]fontscan.Footprint, error) {
	s.once.Do(func() {
		dir := s.CacheDir
		if dir == "" {
			if d, err := os.UserCacheDir(); err == nil {
				dir = d
			}
		}
		s.footprints, s.err = fontscan.SystemFonts(printfLogger{}, dir)
		if s.err != nil {
			s.err = fmt.Errorf("fontface: failed to scan system fonts: %w", s.err)
		}
		Logger().Debug("fontface: system fonts scanned", "count", len(s.footprints))
	})
	return s.footprints, s.err
}

// Resolve implements SystemResolver. It returns the installed face of
// family closest to aspect.
func (s *SystemFonts) Resolve(ctx context.Context, family string, aspect font.Aspect) ([]byte, error) {
	footprints, err := s.Footprints()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fp, ok := bestFootprint(footprints, family, aspect)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoFontFound, family)
	}

	data, err := os.ReadFile(fp.Location.File)
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to read system font: %w", err)
	}
	return data, nil
}

// bestFootprint picks the single-font file of family whose aspect is
// nearest to want. Collections are skipped since they cannot be parsed.
func bestFootprint(footprints []fontscan.Footprint, family string, want font.Aspect) (fontscan.Footprint, bool) {
	target := font.NormalizeFamily(family)

	var (
		best      fontscan.Footprint
		bestScore = math.Inf(1)
	)
	for _, fp := range footprints {
		if fp.Family != target || isCollection(fp.Location.File) {
			continue
		}
		if score := aspectDistance(fp.Aspect, want); score < bestScore {
			best, bestScore = fp, score
		}
	}
	return best, !math.IsInf(bestScore, 1)
}

func isCollection(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc", ".dfont":
		return true
	}
	return false
}

// aspectDistance orders candidate faces: style mismatches dominate, then
// weight, then stretch.
func aspectDistance(got, want font.Aspect) float64 {
	var d float64
	if got.Style != want.Style {
		d += 10000
	}
	d += math.Abs(float64(got.Weight - want.Weight))
	d += math.Abs(float64(got.Stretch-want.Stretch)) * 100
	return d
}
