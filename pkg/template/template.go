package template

import (
	"log/slog"
	"strings"

	"github.com/typeahead-kit/typeahead/pkg/extract"
)

// Template is a compiled template. It is immutable and may be executed
// concurrently.
type Template struct {
	source    string
	fragments []fragment
	logger    *slog.Logger
}

// fragment is either literal text or a placeholder path.
type fragment struct {
	text        string
	path        extract.Path
	placeholder bool
}

// Source returns the template text the Template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// Paths returns the trimmed path of every placeholder in order of
// appearance.
func (t *Template) Paths() []string {
	var paths []string
	for _, f := range t.fragments {
		if f.placeholder {
			paths = append(paths, f.path.String())
		}
	}
	return paths
}

// Execute renders the template against data. Path errors from package
// extract are returned unchanged.
func (t *Template) Execute(data any) (string, error) {
	var b strings.Builder
	b.Grow(len(t.source))

	for _, f := range t.fragments {
		if !f.placeholder {
			b.WriteString(f.text)
			continue
		}

		value, err := f.path.Extract(data)
		if err != nil {
			return "", err
		}
		if extract.IsMissing(value) {
			t.logger.Debug("placeholder resolved to nothing", "path", f.path.String())
			continue
		}
		b.WriteString(FormatValue(value))
	}

	return b.String(), nil
}
