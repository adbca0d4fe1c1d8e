package sketch

import (
	"sync"

	"github.com/gogpu/sketch/fontface"
	"github.com/gogpu/sketch/text"
)

// rendererCall records one forwarded call.
type rendererCall struct {
	Name string
	Args []any
}

// fakeRenderer records calls and returns fixed values so forwarding can
// be checked end to end.
type fakeRenderer struct {
	calls []rendererCall
	font  *fontface.FontFace
}

func (f *fakeRenderer) record(name string, args ...any) {
	f.calls = append(f.calls, rendererCall{Name: name, Args: args})
}

func (f *fakeRenderer) Text(s string, x, y float64, box ...float64) {
	f.record("Text", s, x, y, box)
}

func (f *fakeRenderer) TextAlign(align ...Align) Alignment {
	f.record("TextAlign", align)
	return Alignment{Horizontal: AlignRight, Vertical: AlignTop}
}

func (f *fakeRenderer) TextAscent(s ...string) float64 {
	f.record("TextAscent", s)
	return 11
}

func (f *fakeRenderer) TextBounds(s string, x, y float64, box ...float64) Bounds {
	f.record("TextBounds", s, x, y, box)
	return Bounds{X: 1, Y: 2, W: 3, H: 4}
}

func (f *fakeRenderer) TextDescent(s ...string) float64 {
	f.record("TextDescent", s)
	return 3
}

func (f *fakeRenderer) TextLeading(leading ...float64) float64 {
	f.record("TextLeading", leading)
	return 21
}

func (f *fakeRenderer) TextFont(font *fontface.FontFace, size ...float64) *fontface.FontFace {
	f.record("TextFont", font, size)
	if font != nil {
		f.font = font
	}
	return f.font
}

func (f *fakeRenderer) TextSize(size ...float64) float64 {
	f.record("TextSize", size)
	return 17
}

func (f *fakeRenderer) TextStyle(style ...Style) Style {
	f.record("TextStyle", style)
	return StyleBoldItalic
}

func (f *fakeRenderer) TextWidth(s string) float64 {
	f.record("TextWidth", s)
	return 42
}

func (f *fakeRenderer) TextWrap(mode ...text.WrapMode) text.WrapMode {
	f.record("TextWrap", mode)
	return text.WrapChar
}

// friendlyReport is one diagnostic received by recordingReporter.
type friendlyReport struct {
	Message string
	Fn      string
	Code    FileLoadCode
	Path    string
	File    bool
}

type recordingReporter struct {
	mu      sync.Mutex
	reports []friendlyReport
}

func (r *recordingReporter) FriendlyError(message, fn string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, friendlyReport{Message: message, Fn: fn})
}

func (r *recordingReporter) FriendlyFileLoadError(code FileLoadCode, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, friendlyReport{Code: code, Path: path, File: true})
}

func (r *recordingReporter) all() []friendlyReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]friendlyReport(nil), r.reports...)
}

// recordingRegistry is a FontRegistry that only remembers what was added.
type recordingRegistry struct {
	mu    sync.Mutex
	faces []*fontface.FontFace
}

func (r *recordingRegistry) Add(face *fontface.FontFace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces = append(r.faces, face)
}

func (r *recordingRegistry) added() []*fontface.FontFace {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*fontface.FontFace(nil), r.faces...)
}
