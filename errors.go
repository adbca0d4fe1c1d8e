package sketch

import (
	"errors"
	"fmt"
)

// ErrInvalidFontPath is returned by LoadFont when the request has no path.
var ErrInvalidFontPath = errors.New("sketch: font path must be a non-empty string")

// ErrInvalidColor is returned by ParseHex for malformed hex colors.
var ErrInvalidColor = errors.New("sketch: invalid hex color")

// ValidationError describes arguments that do not match a function's
// parameter schema.
type ValidationError struct {
	// Func is the sketch-facing function name, e.g. "textSize".
	Func string
	// Index is the zero-based parameter index, or -1 for arity errors.
	Index int
	// Param names the parameter.
	Param string
	// Want describes the expected value.
	Want string
	// Got is the received value, or the argument count for arity errors.
	Got any
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("sketch: %s() was expecting %s, but received %v", e.Func, e.Want, e.Got)
	}
	return fmt.Sprintf("sketch: %s() was expecting %s for parameter #%d (%s), received %v",
		e.Func, e.Want, e.Index, e.Param, e.Got)
}

// MissingMethodError reports a sketch function without its Go method.
type MissingMethodError struct {
	Type   string
	Method string
	Func   string
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf("sketch: %s.%s is not a function (%s)", e.Type, e.Method, e.Func)
}
