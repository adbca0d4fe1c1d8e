// Package sketch provides the text API of a creative-coding drawing
// context: drawing and measuring text, choosing fonts and loading font
// files.
//
// A Sketch forwards each text function to its renderer, after checking
// the arguments against a parameter schema:
//
//	s := sketch.NewSketch(400, 200)
//	s.Background(sketch.White)
//	s.TextSize(32)
//	s.TextAlign(sketch.AlignCenter, sketch.AlignCenter)
//	s.Text("Hello", 200, 100)
//	_ = s.SavePNG("hello.png")
//
// Invalid arguments never stop the program. They are reported as
// friendly diagnostics through the sketch's Reporter, which logs them by
// default, and the call still goes through.
//
// # Fonts
//
// LoadFont fetches a TTF, OTF or WOFF file, registers it in the sketch's
// font registry and returns it once parsed:
//
//	face, err := s.LoadFont(ctx, sketch.FontRequest{Path: "assets/Inter-Regular.ttf"})
//	if err != nil {
//	    return err
//	}
//	s.TextFont(face, 24)
//
// The family name is taken from the file name ("Inter-Regular") unless
// FontRequest.Name is set. LoadFontAsync returns a channel instead of
// blocking.
//
// # Renderers
//
// Renderer2D rasterizes text into a Pixmap using the text package. Any
// type implementing TextRenderer can be injected with WithRenderer.
//
// # Logging
//
// The package is silent by default. SetLogger enables log/slog output for
// sketch and fontface.
package sketch
