package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/typeahead-kit/typeahead/internal/selector"
	"github.com/typeahead-kit/typeahead/pkg/cli/internal/parse"
	"github.com/typeahead-kit/typeahead/pkg/dataset"
)

// readTemplate returns arg, or the contents of the named file when arg
// starts with @. One trailing newline of a template file is dropped.
func readTemplate(arg string) (string, error) {
	name, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// loadData loads the document at path and narrows it with expr. An empty
// path yields nil data.
func loadData(path, expr string) (any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if expr == "" {
		return data, nil
	}
	selected, err := selector.Select(data, expr)
	if err != nil {
		return nil, fmt.Errorf("select %q: %w", expr, err)
	}
	return selected, nil
}

// applyAssignments sets top-level string values on mapping data. Nil data
// becomes a new mapping.
func applyAssignments(data any, pairs []string) (any, error) {
	if len(pairs) == 0 {
		return data, nil
	}
	values, err := parse.Assignments(pairs)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	switch t := data.(type) {
	case nil:
		m = make(map[string]any, len(values))
	case map[string]any:
		m = t
	default:
		return nil, fmt.Errorf("%w, got %T", ErrNotMapping, data)
	}
	for k, v := range values {
		m[k] = v
	}
	return m, nil
}
