// Command textdemo renders a paragraph of text with a font loaded
// through the sketch text API.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/sketch"
)

const sample = "The quick brown fox jumps over the lazy dog. " +
	"Sphinx of black quartz, judge my vow."

func main() {
	var (
		fontPath = flag.String("font", "", "font file or URL (.ttf, .otf, .woff); empty uses the built-in face")
		name     = flag.String("name", "", "family name to register the font under")
		text     = flag.String("text", sample, "text to render")
		size     = flag.Float64("size", 32, "font size in pixels")
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 400, "image height")
		output   = flag.String("output", "textdemo.png", "output file")
		fill     = flag.String("color", "#202020", "text color, hex")
		verbose  = flag.Bool("v", false, "log font loading")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ink, err := sketch.ParseHex(*fill)
	if err != nil {
		log.Fatalf("Invalid -color: %v", err)
	}

	s := sketch.NewSketch(*width, *height)
	s.Background(sketch.White)
	s.Fill(ink)

	if *fontPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		face, err := s.LoadFont(ctx, sketch.FontRequest{Path: *fontPath, Name: *name})
		cancel()
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		s.TextFont(face)
		log.Printf("Loaded %q (%s)", face.Family(), face.FontSource().Format())
	}

	margin := float64(*width) / 10
	boxW := float64(*width) - 2*margin
	boxH := float64(*height) - 2*margin

	s.TextSize(*size)
	s.TextAlign(sketch.AlignCenter, sketch.AlignCenter)
	s.Text(*text, margin, margin, boxW, boxH)

	b := s.TextBounds(*text, margin, margin, boxW, boxH)
	log.Printf("Text covers %.0fx%.0f at (%.0f, %.0f)", b.W, b.H, b.X, b.Y)

	if err := s.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}
