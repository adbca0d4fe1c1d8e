package fontface

import (
	"context"
	"sync"

	"github.com/gogpu/sketch/text"
)

// Status is the load state of a FontFace.
type Status int

const (
	// StatusUnloaded means Load has not been called yet.
	StatusUnloaded Status = iota
	// StatusLoading means a load is in progress.
	StatusLoading
	// StatusLoaded means the font data was fetched and parsed.
	StatusLoaded
	// StatusError means the load failed; Err reports why.
	StatusError
)

// String returns the status name used by the CSS Font Loading API.
func (s Status) String() string {
	switch s {
	case StatusUnloaded:
		return "unloaded"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	defaultFetcher Fetcher        = &ResourceFetcher{}
	defaultSystem  SystemResolver = &SystemFonts{}
)

// Option configures a FontFace.
type Option func(*FontFace)

// WithFetcher sets the fetcher used for url() sources.
func WithFetcher(f Fetcher) Option {
	return func(ff *FontFace) {
		if f != nil {
			ff.fetcher = f
		}
	}
}

// WithSystemFonts sets the resolver used for local() sources.
func WithSystemFonts(r SystemResolver) Option {
	return func(ff *FontFace) {
		if r != nil {
			ff.system = r
		}
	}
}

// FontFace is a font resource identified by a family name, a source and
// its descriptors. It starts unloaded; Load fetches and parses the data.
//
// FontFace is safe for concurrent use.
type FontFace struct {
	family string
	src    Source
	desc   Descriptors

	fetcher Fetcher
	system  SystemResolver

	start sync.Once
	done  chan struct{}

	mu     sync.RWMutex
	status Status
	source *text.FontSource
	err    error
}

// New creates an unloaded FontFace. An empty family is allowed; such a
// face can still be loaded and drawn with, but never matches a family
// lookup.
func New(family string, src Source, desc Descriptors, opts ...Option) *FontFace {
	f := &FontFace{
		family:  family,
		src:     src,
		desc:    desc,
		fetcher: defaultFetcher,
		system:  defaultSystem,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Family returns the family name the face was created with.
func (f *FontFace) Family() string { return f.family }

// Src returns the face's source descriptor.
func (f *FontFace) Src() Source { return f.src }

// Descriptors returns the face's descriptors.
func (f *FontFace) Descriptors() Descriptors { return f.desc }

// Status returns the current load state.
func (f *FontFace) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Err returns the load error, if the face is in StatusError.
func (f *FontFace) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}

// FontSource returns the parsed font, or nil until the face is loaded.
func (f *FontFace) FontSource() *text.FontSource {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.source
}

// Done returns a channel closed when loading finishes, successfully or not.
func (f *FontFace) Done() <-chan struct{} {
	return f.done
}

// Load fetches and parses the font data. Only the first call does the
// work, using its ctx; concurrent and later calls wait for that outcome
// or for their own ctx, whichever comes first.
func (f *FontFace) Load(ctx context.Context) error {
	first := false
	f.start.Do(func() { first = true })
	if first {
		f.load(ctx)
		return f.Err()
	}

	select {
	case <-f.done:
		return f.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *FontFace) load(ctx context.Context) {
	f.mu.Lock()
	f.status = StatusLoading
	f.mu.Unlock()

	log := Logger().With("family", f.family, "src", f.src.String())
	log.Debug("fontface: loading")

	source, err := f.fetchAndParse(ctx)

	f.mu.Lock()
	if err != nil {
		f.status = StatusError
		f.err = &LoadError{Family: f.family, Source: f.src, Err: err}
	} else {
		f.status = StatusLoaded
		f.source = source
	}
	f.mu.Unlock()
	close(f.done)

	if err != nil {
		log.Warn("fontface: load failed", "err", err)
		return
	}
	log.Debug("fontface: loaded", "format", source.Format().String(), "name", source.Name())
}

func (f *FontFace) fetchAndParse(ctx context.Context) (*text.FontSource, error) {
	var (
		data []byte
		err  error
	)
	switch f.src.kind {
	case SourceLocal:
		data, err = f.system.Resolve(ctx, f.src.value, f.desc.Aspect())
	case SourceData:
		data = f.src.data
	default:
		data, err = f.fetcher.Fetch(ctx, f.src.value)
	}
	if err != nil {
		return nil, err
	}
	return text.NewFontSource(data)
}
