package fontface

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by font loading.
// Pass nil to restore the default silent logger.
// sketch.SetLogger forwards its logger here.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current fontface logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// printfLogger adapts slog to the Printf logger fontscan expects.
type printfLogger struct{}

func (printfLogger) Printf(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...), "component", "fontscan")
}
