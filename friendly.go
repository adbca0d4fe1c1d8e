package sketch

import (
	"fmt"
	"log/slog"
)

// FileLoadCode identifies the kind of resource a failed load was for.
type FileLoadCode int

const (
	FileLoadImage FileLoadCode = iota
	FileLoadXML
	FileLoadTable
	FileLoadStrings
	FileLoadFont
	FileLoadJSON
)

var fileLoadNouns = [...]string{
	"your image",
	"your XML file",
	"your table file",
	"your text file",
	"your font",
	"your JSON file",
}

// Message returns the friendly explanation for a failed load of path.
func (c FileLoadCode) Message(path string) string {
	noun := "your file"
	if c >= 0 && int(c) < len(fileLoadNouns) {
		noun = fileLoadNouns[c]
	}
	return fmt.Sprintf("It looks like there was a problem loading %s. "+
		"Try checking if the file path (%s) is correct, hosting the file online, or running a local server.",
		noun, path)
}

// Reporter receives friendly diagnostics: beginner-oriented messages that
// never stop the program.
type Reporter interface {
	// FriendlyError reports message on behalf of the function labelled fn.
	FriendlyError(message, fn string)
	// FriendlyFileLoadError reports a failed load of path.
	FriendlyFileLoadError(code FileLoadCode, path string)
}

// LogReporter writes friendly diagnostics at warn level.
type LogReporter struct {
	// Logger receives the diagnostics. Nil means the package Logger once
	// SetLogger has configured one, and slog.Default before that, so
	// diagnostics are visible out of the box.
	Logger *slog.Logger
}

func (r LogReporter) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	if l := Logger(); !silent(l) {
		return l
	}
	return slog.Default()
}

// FriendlyError implements Reporter.
func (r LogReporter) FriendlyError(message, fn string) {
	r.logger().Warn(message, "fn", fn)
}

// FriendlyFileLoadError implements Reporter.
func (r LogReporter) FriendlyFileLoadError(code FileLoadCode, path string) {
	r.logger().Warn(code.Message(path), "code", int(code), "path", path)
}
