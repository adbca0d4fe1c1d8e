// Package fontface loads font resources the way the CSS Font Loading API
// describes them: a FontFace pairs a family name with a source and a set
// of descriptors, and is loaded on demand.
//
// Sources come in three kinds:
//
//	fontface.URL("assets/Inter.ttf")            // path, file://, http(s):// or data: URL
//	fontface.Local("DejaVu Sans")               // an installed system font
//	fontface.Data(ttfBytes)                     // bytes already in memory
//
// Loading is idempotent and safe to call from several goroutines; the
// first call does the work and every caller observes the same outcome:
//
//	face := fontface.New("Inter", fontface.URL("assets/Inter.ttf"), fontface.Descriptors{})
//	if err := face.Load(ctx); err != nil {
//	    return err
//	}
//	src := face.FontSource() // *text.FontSource
//
// A FontSet collects faces and looks them up by family and aspect.
//
// # Logging
//
// The package logs through log/slog and is silent by default; see
// SetLogger.
package fontface
