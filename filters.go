// Package textfilters provides text case transformation filters for the
// pongo2 template engine.
//
// Each filter takes a string value, reformats it, and returns the result:
//
//	{{ "some text" | camel_case }} -> SomeText
//	{{ "some text" | kebab_case }} -> some-text
//	{{ "soMe Text" | upper_case }} -> SOME TEXT
//
// Filters reject non-string values instead of stringifying them; the second
// filter argument is accepted and ignored.
package textfilters

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-textfilters/internal/caseconv"
)

// CamelCase converts text into CamelCase.
func CamelCase(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return applyStyle("camel_case", caseconv.Camel, in)
}

// KebabCase converts text into kebab-case.
func KebabCase(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return applyStyle("kebab_case", caseconv.Kebab, in)
}

// LowerCase converts the whole text into lowercase, keeping separators and
// spacing intact.
func LowerCase(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return applyStyle("lower_case", caseconv.Lower, in)
}

// MixedCase converts text into mixedCase.
func MixedCase(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return applyStyle("mixed_case", caseconv.Mixed, in)
}

// SnakeCase converts text into snake_case.
func SnakeCase(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return applyStyle("snake_case", caseconv.Snake, in)
}

// TitleCase converts text into Title Case.
func TitleCase(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return applyStyle("title_case", caseconv.Title, in)
}

// UpperCase converts the whole text into UPPERCASE, keeping separators and
// spacing intact.
func UpperCase(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return applyStyle("upper_case", caseconv.Upper, in)
}

// Filters returns every filter in the set keyed by its registration name.
// Hosts that manage their own filter table can wire these directly; most
// callers want RegisterAll or RegisterOn instead.
func Filters() map[string]pongo2.FilterFunction {
	out := make(map[string]pongo2.FilterFunction, len(styles))
	for name, style := range styles {
		out[name] = filterFor(name, style)
	}
	return out
}

func filterFor(name string, style caseconv.Style) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return applyStyle(name, style, in)
	}
}

// RegisterAll registers every filter with pongo2's filter table. Names that
// already exist are left untouched so repeated setup stays safe.
func RegisterAll() error {
	for name, fn := range Filters() {
		if pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return fmt.Errorf("textfilters: register filter %q: %w", name, err)
		}
	}
	return nil
}

func applyStyle(name string, style caseconv.Style, in *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsString() {
		return nil, &pongo2.Error{
			Sender:    "filter:" + name,
			OrigError: typeMismatch(name, in.Interface()),
		}
	}
	return pongo2.AsValue(caseconv.Convert(in.String(), style)), nil
}

// typeMismatch is the single failure mode of the filter set: the value fed to
// the filter was not a string.
func typeMismatch(name string, got any) error {
	return fmt.Errorf("textfilters: filter %q received an incorrect type for arg %q: got %T, expected a string", name, "value", got)
}
