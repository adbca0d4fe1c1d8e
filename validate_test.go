package sketch

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/sketch/fontface"
	"github.com/gogpu/sketch/text"
)

func TestSchemaValidator(t *testing.T) {
	face := fontface.New("X", fontface.Data(nil), fontface.Descriptors{})

	tests := []struct {
		name    string
		fn      string
		args    []any
		wantErr *ValidationError
	}{
		{name: "text", fn: "text", args: []any{"a", 1.0, 2.0}},
		{name: "text box", fn: "text", args: []any{"a", 1.0, 2.0, 10.0, 20.0}},
		{name: "ints are numbers", fn: "text", args: []any{"a", 1, int64(2)}},
		{name: "align both", fn: "textAlign", args: []any{AlignCenter, AlignBaseline}},
		{name: "query", fn: "textSize"},
		{name: "font", fn: "textFont", args: []any{face, 12.0}},
		{name: "nil font", fn: "textFont", args: []any{(*fontface.FontFace)(nil), 12.0}},
		{name: "wrap char", fn: "textWrap", args: []any{text.WrapChar}},
		{name: "unknown function", fn: "noSuchThing", args: []any{1, 2, 3}},
		{
			name:    "missing args",
			fn:      "text",
			args:    []any{"a"},
			wantErr: &ValidationError{Func: "text", Index: -1, Want: "at least 3 arguments", Got: 1},
		},
		{
			name:    "too many",
			fn:      "textWidth",
			args:    []any{"a", "b"},
			wantErr: &ValidationError{Func: "textWidth", Index: -1, Want: "no more than 1 argument", Got: 2},
		},
		{
			name:    "wrong type",
			fn:      "textWidth",
			args:    []any{3.0},
			wantErr: &ValidationError{Func: "textWidth", Index: 0, Param: "str", Want: "a string", Got: 3.0},
		},
		{
			name:    "nan",
			fn:      "text",
			args:    []any{"a", math.NaN(), 0.0},
			wantErr: &ValidationError{Func: "text", Index: 1, Param: "x", Want: "a finite number"},
		},
		{
			name:    "infinite leading",
			fn:      "textLeading",
			args:    []any{math.Inf(1)},
			wantErr: &ValidationError{Func: "textLeading", Index: 0, Param: "leading", Want: "a non-negative number", Got: math.Inf(1)},
		},
		{
			name:    "horizontal as vertical",
			fn:      "textAlign",
			args:    []any{AlignLeft, AlignRight},
			wantErr: &ValidationError{Func: "textAlign", Index: 1, Param: "vertAlign", Want: "TOP, CENTER, BOTTOM or BASELINE", Got: AlignRight},
		},
		{
			name:    "string size",
			fn:      "textSize",
			args:    []any{"12px"},
			wantErr: &ValidationError{Func: "textSize", Index: 0, Param: "size", Want: "a non-negative number", Got: "12px"},
		},
	}

	v := SchemaValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.fn, tt.args)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var got *ValidationError
			if !errors.As(err, &got) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			// NaN never equals itself; compare everything else.
			if tt.name == "nan" {
				got.Got = nil
			}
			if diff := cmp.Diff(tt.wantErr, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchemaValidatorCustomSchemas(t *testing.T) {
	v := SchemaValidator{Schemas: map[string][]Param{
		"circle": {{Name: "x", Kind: KindNumber}, {Name: "y", Kind: KindNumber}, {Name: "d", Kind: KindLength}},
	}}

	if err := v.Validate("circle", []any{1.0, 2.0, 3.0}); err != nil {
		t.Errorf("Validate(circle) error = %v", err)
	}
	if err := v.Validate("circle", []any{1.0, 2.0, -3.0}); err == nil {
		t.Error("Validate(circle, negative d) error = nil")
	}
	if err := v.Validate("textSize", []any{-1.0}); err != nil {
		t.Errorf("custom schemas should replace the text schemas, got %v", err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{
			&ValidationError{Func: "textSize", Index: 0, Param: "size", Want: "a non-negative number", Got: -3.0},
			"sketch: textSize() was expecting a non-negative number for parameter #0 (size), received -3",
		},
		{
			&ValidationError{Func: "text", Index: -1, Want: "at least 3 arguments", Got: 1},
			"sketch: text() was expecting at least 3 arguments, but received 1",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestTextSchemasCoverTextFunctions(t *testing.T) {
	for _, fn := range TextFunctions {
		if _, ok := TextSchemas[fn]; !ok {
			t.Errorf("no schema for %s", fn)
		}
	}
}
