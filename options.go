package sketch

import "github.com/gogpu/sketch/fontface"

// SketchOption configures a Sketch during creation.
//
// Example:
//
//	// Default software renderer drawing into a fresh pixmap
//	s := sketch.NewSketch(800, 600)
//
//	// Custom renderer (dependency injection)
//	s := sketch.NewSketch(800, 600, sketch.WithRenderer(myRenderer))
type SketchOption func(*sketchOptions)

type sketchOptions struct {
	renderer  TextRenderer
	pixmap    *Pixmap
	validator ParamValidator
	reporter  Reporter
	fonts     FontRegistry
	fetcher   fontface.Fetcher
}

func defaultOptions() sketchOptions {
	return sketchOptions{
		validator: SchemaValidator{},
		reporter:  LogReporter{},
	}
}

// WithRenderer sets the renderer text functions are forwarded to.
// Nil keeps the default Renderer2D.
func WithRenderer(r TextRenderer) SketchOption {
	return func(o *sketchOptions) {
		o.renderer = r
	}
}

// WithPixmap sets the pixmap the default renderer draws into.
// The pixmap dimensions should match the Sketch dimensions.
func WithPixmap(pm *Pixmap) SketchOption {
	return func(o *sketchOptions) {
		o.pixmap = pm
	}
}

// WithValidator sets the parameter validator. Use NopValidator{} to
// disable checking.
func WithValidator(v ParamValidator) SketchOption {
	return func(o *sketchOptions) {
		if v != nil {
			o.validator = v
		}
	}
}

// WithReporter sets where friendly diagnostics go.
func WithReporter(r Reporter) SketchOption {
	return func(o *sketchOptions) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithFontRegistry sets the registry loaded fonts are added to.
// When it also implements FaceLookup, the default renderer uses it to
// resolve TextStyle.
func WithFontRegistry(reg FontRegistry) SketchOption {
	return func(o *sketchOptions) {
		o.fonts = reg
	}
}

// WithFetcher sets how LoadFont retrieves font files.
func WithFetcher(f fontface.Fetcher) SketchOption {
	return func(o *sketchOptions) {
		o.fetcher = f
	}
}
