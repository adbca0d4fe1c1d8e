package sketch

import (
	"reflect"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MethodName returns the Go method implementing the sketch function fn,
// e.g. "TextAlign" for "textAlign".
func MethodName(fn string) string {
	return cases.Title(language.Und, cases.NoLower).String(fn)
}

// VerifyAPI checks that t has a method for each function in names.
func VerifyAPI(t reflect.Type, names []string) error {
	for _, name := range names {
		m := MethodName(name)
		if _, ok := t.MethodByName(m); !ok {
			return &MissingMethodError{Type: t.String(), Method: m, Func: name}
		}
	}
	return nil
}

func init() {
	sketchFuncs := append([]string{"loadFont", "loadFontAsync"}, TextFunctions...)
	if err := VerifyAPI(reflect.TypeOf((*Sketch)(nil)), sketchFuncs); err != nil {
		panic(err)
	}
	if err := VerifyAPI(reflect.TypeOf((*TextRenderer)(nil)).Elem(), TextFunctions); err != nil {
		panic(err)
	}
}
