package sketch

import (
	"math"
	"strconv"

	"github.com/gogpu/sketch/fontface"
	"github.com/gogpu/sketch/text"
)

// ParamValidator checks the arguments of a sketch function before it is
// forwarded. A returned error is reported as a friendly diagnostic; the
// call still proceeds.
type ParamValidator interface {
	Validate(fn string, args []any) error
}

// ValidatorFunc adapts a function to the ParamValidator interface.
type ValidatorFunc func(fn string, args []any) error

// Validate implements ParamValidator.
func (f ValidatorFunc) Validate(fn string, args []any) error {
	return f(fn, args)
}

// NopValidator accepts every call.
type NopValidator struct{}

// Validate implements ParamValidator.
func (NopValidator) Validate(string, []any) error { return nil }

// ParamKind is the expected type and range of a parameter.
type ParamKind int

const (
	KindString ParamKind = iota
	KindNumber
	KindLength // finite and non-negative
	KindHAlign
	KindVAlign
	KindStyle
	KindWrap
	KindFont
)

var kindWants = [...]string{
	KindString: "a string",
	KindNumber: "a finite number",
	KindLength: "a non-negative number",
	KindHAlign: "LEFT, CENTER or RIGHT",
	KindVAlign: "TOP, CENTER, BOTTOM or BASELINE",
	KindStyle:  "NORMAL, ITALIC, BOLD or BOLDITALIC",
	KindWrap:   "WORD or CHAR",
	KindFont:   "a font",
}

// Param describes one parameter of a function. Optional parameters must
// follow the required ones.
type Param struct {
	Name     string
	Kind     ParamKind
	Optional bool
}

// TextSchemas are the parameter schemas of the text functions.
var TextSchemas = map[string][]Param{
	"text":        boxedTextParams,
	"textAlign":   {{"horizAlign", KindHAlign, true}, {"vertAlign", KindVAlign, true}},
	"textAscent":  {{"str", KindString, true}},
	"textBounds":  boxedTextParams,
	"textDescent": {{"str", KindString, true}},
	"textLeading": {{"leading", KindLength, true}},
	"textFont":    {{"font", KindFont, true}, {"size", KindLength, true}},
	"textSize":    {{"size", KindLength, true}},
	"textStyle":   {{"style", KindStyle, true}},
	"textWidth":   {{"str", KindString, false}},
	"textWrap":    {{"wrapStyle", KindWrap, true}},
}

var boxedTextParams = []Param{
	{"str", KindString, false},
	{"x", KindNumber, false},
	{"y", KindNumber, false},
	{"maxWidth", KindLength, true},
	{"maxHeight", KindLength, true},
}

// SchemaValidator validates calls against per-function parameter
// schemas. Functions without a schema are accepted.
type SchemaValidator struct {
	// Schemas maps function names to their parameters.
	// Nil means TextSchemas.
	Schemas map[string][]Param
}

// Validate implements ParamValidator.
func (v SchemaValidator) Validate(fn string, args []any) error {
	schemas := v.Schemas
	if schemas == nil {
		schemas = TextSchemas
	}
	params, ok := schemas[fn]
	if !ok {
		return nil
	}

	required := 0
	for _, p := range params {
		if !p.Optional {
			required++
		}
	}
	switch {
	case len(args) > len(params):
		return &ValidationError{Func: fn, Index: -1, Want: arity("no more than", len(params)), Got: len(args)}
	case len(args) < required:
		return &ValidationError{Func: fn, Index: -1, Want: arity("at least", required), Got: len(args)}
	}

	for i, arg := range args {
		p := params[i]
		if !checkKind(p.Kind, arg) {
			return &ValidationError{Func: fn, Index: i, Param: p.Name, Want: kindWants[p.Kind], Got: arg}
		}
	}
	return nil
}

func arity(bound string, n int) string {
	if n == 1 {
		return bound + " 1 argument"
	}
	return bound + " " + strconv.Itoa(n) + " arguments"
}

func checkKind(kind ParamKind, arg any) bool {
	switch kind {
	case KindString:
		_, ok := arg.(string)
		return ok
	case KindNumber:
		f, ok := toFloat(arg)
		return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
	case KindLength:
		f, ok := toFloat(arg)
		return ok && validLength(f)
	case KindHAlign:
		a, ok := arg.(Align)
		return ok && a.Horizontal()
	case KindVAlign:
		a, ok := arg.(Align)
		return ok && a.Vertical()
	case KindStyle:
		s, ok := arg.(Style)
		return ok && s >= StyleNormal && s <= StyleBoldItalic
	case KindWrap:
		m, ok := arg.(text.WrapMode)
		return ok && (m == text.WrapWord || m == text.WrapChar)
	case KindFont:
		_, ok := arg.(*fontface.FontFace)
		return ok
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
