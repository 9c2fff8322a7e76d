package textfilters

import (
	"fmt"

	"github.com/goliatone/go-textfilters/internal/caseconv"
)

// styles is the single table of registration names; Filters, RegisterAll,
// and RegisterOn are all derived from it.
var styles = map[string]caseconv.Style{
	"camel_case": caseconv.Camel,
	"kebab_case": caseconv.Kebab,
	"lower_case": caseconv.Lower,
	"mixed_case": caseconv.Mixed,
	"snake_case": caseconv.Snake,
	"title_case": caseconv.Title,
	"upper_case": caseconv.Upper,
}

// FilterRegistrar is the registration seam exposed by template engine
// wrappers such as github.com/goliatone/go-template: a filter is a plain
// function over dynamically typed values.
type FilterRegistrar interface {
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}

// RegisterOn registers the whole filter set on a generic engine wrapper.
// The string contract is the same as for the pongo2 filters: non-string
// input fails, it is never stringified.
func RegisterOn(reg FilterRegistrar) error {
	for name, style := range styles {
		name, style := name, style // per-iteration copies for the closure under go < 1.22
		err := reg.RegisterFilter(name, func(input any, _ any) (any, error) {
			s, ok := input.(string)
			if !ok {
				return nil, typeMismatch(name, input)
			}
			return caseconv.Convert(s, style), nil
		})
		if err != nil {
			return fmt.Errorf("textfilters: register filter %q: %w", name, err)
		}
	}
	return nil
}
