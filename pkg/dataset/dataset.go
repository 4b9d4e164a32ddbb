// Package dataset loads the data templates are rendered against from JSON
// and YAML documents, and validates it against JSON Schema.
//
// Decoded values use the shapes package extract understands: map[string]any
// for objects, []any for arrays, int64 or float64 for JSON numbers and
// int or float64 for YAML numbers.
package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

// Supported formats.
const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name or file extension ("json", ".yml", ...) to a
// Format. Unknown names yield FormatAuto.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Parse decodes a document. FormatAuto treats input starting with '{' or
// '[' as JSON and anything else as YAML.
func Parse(data []byte, format Format) (any, error) {
	if format == FormatAuto {
		format = sniff(data)
	}

	switch format {
	case FormatJSON:
		v, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return v, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		return normalizeYAML(v), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// normalizeYAML converts mappings with non-string keys, which yaml.v3
// decodes as map[any]any, into map[string]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

// Load reads and decodes a file. The format comes from the extension;
// other extensions are sniffed. A path of "-" reads standard input.
func Load(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	v, err := Parse(data, ParseFormat(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// LoadItems loads every file matching a glob pattern and collects the
// items: a document holding an array contributes its elements, any other
// document contributes itself. Files are read in sorted order. Patterns
// containing ** match recursively.
func LoadItems(pattern string) ([]any, error) {
	matches, err := expandGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob pattern: %w", err)
	}
	sort.Strings(matches)

	items := []any{}
	for _, match := range matches {
		doc, err := Load(match)
		if err != nil {
			return nil, err
		}
		if list, ok := doc.([]any); ok {
			items = append(items, list...)
			continue
		}
		items = append(items, doc)
	}
	return items, nil
}

// expandGlob expands a glob pattern to a list of matching file paths.
// Uses doublestar for ** support, falls back to filepath.Glob for simple patterns.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}
