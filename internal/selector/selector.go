// Package selector picks a value out of a decoded document, either by a
// JSONPath expression ("$.results[*]") or by a dotted path ("results").
package selector

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/typeahead-kit/typeahead/pkg/extract"
)

// IsJSONPath reports whether expr is treated as JSONPath.
func IsJSONPath(expr string) bool {
	return strings.HasPrefix(strings.TrimSpace(expr), "$")
}

// Select evaluates expr against data. An empty expr returns data unchanged.
//
// JSONPath expressions return the single match, or a []any when several
// values match, so "$.items[*]" over a one-element array yields the
// element. No match yields extract.Missing. Anything else is resolved with
// extract.Extract.
func Select(data any, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return data, nil
	}
	if !IsJSONPath(expr) {
		return extract.Extract(data, expr)
	}

	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", expr, err)
	}

	results := x.Get(data)
	switch len(results) {
	case 0:
		return extract.Missing, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// Items selects a list of items. A selected sequence is returned as is, a
// single value as a one-element list and nothing as an empty list.
func Items(data any, expr string) ([]any, error) {
	v, err := Select(data, expr)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case []any:
		return t, nil
	default:
		if extract.IsMissing(v) || v == nil {
			return []any{}, nil
		}
		return []any{v}, nil
	}
}
