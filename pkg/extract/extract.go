package extract

import (
	"reflect"
	"strings"
)

type missing struct{}

func (missing) String() string { return "" }

// Missing is returned when a path addresses nothing. It is distinct from a
// present nil value.
var Missing any = missing{}

// IsMissing reports whether v is the Missing marker.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// Path is a parsed dotted path. The zero value addresses data[""].
// A Path is immutable and safe for concurrent use.
type Path struct {
	raw      string
	segments []string
}

// ParsePath splits a dotted path into segments. A single trailing empty
// segment is dropped, so "a." addresses the same value as "a".
func ParsePath(path string) Path {
	segments := strings.Split(path, ".")
	if len(segments) > 1 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return Path{raw: path, segments: segments}
}

// String returns the path as it was parsed.
func (p Path) String() string {
	return p.raw
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	if p.segments == nil {
		return []string{""}
	}
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Extract resolves the path against data. It returns Missing when the path
// addresses nothing and an *InvalidPathError when a segment applied to a
// sequence is not a number or is negative.
func (p Path) Extract(data any) (any, error) {
	segments := p.segments
	if segments == nil {
		segments = []string{""}
	}

	current := data
	for _, segment := range segments {
		next, err := step(current, segment, p.raw)
		if err != nil {
			return Missing, err
		}
		if IsMissing(next) {
			return Missing, nil
		}
		current = next
	}
	return current, nil
}

// Extract resolves a dotted path against data.
// See Path.Extract for the rules.
func Extract(data any, path string) (any, error) {
	return ParsePath(path).Extract(data)
}

// Lookup is like Extract but reports presence separately, so a present nil
// can be told apart from a missing value.
func Lookup(data any, path string) (any, bool, error) {
	v, err := Extract(data, path)
	if err != nil {
		return nil, false, err
	}
	if IsMissing(v) {
		return nil, false, nil
	}
	return v, true, nil
}

// step applies one segment to one level of data.
func step(current any, segment, path string) (any, error) {
	switch c := current.(type) {
	case nil, missing:
		return Missing, nil
	case []any:
		idx, err := sequenceIndex(segment, path)
		if err != nil {
			return Missing, err
		}
		if idx < 0 || idx >= len(c) {
			return Missing, nil
		}
		return c[idx], nil
	case map[string]any:
		v, ok := c[segment]
		if !ok {
			return Missing, nil
		}
		return v, nil
	case string, bool, float64, int, int64:
		return Missing, nil
	}
	return reflectStep(reflect.ValueOf(current), segment, path)
}

// sequenceIndex validates a segment used against a sequence and returns the
// element index it addresses, or -1 when it addresses none.
func sequenceIndex(segment, path string) (int, error) {
	n, ok := parseNumber(segment)
	if !ok {
		return -1, notANumber(path, segment)
	}
	if n < 0 {
		return -1, negativeIndex(path, segment)
	}
	return canonicalIndex(segment), nil
}

// reflectStep handles typed containers: slices and arrays of any element
// type, maps keyed by strings, and structs.
func reflectStep(v reflect.Value, segment, path string) (any, error) {
	v = indirect(v)
	if !v.IsValid() {
		return Missing, nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if isBytes(v) {
			return Missing, nil
		}
		idx, err := sequenceIndex(segment, path)
		if err != nil {
			return Missing, err
		}
		if idx < 0 || idx >= v.Len() {
			return Missing, nil
		}
		return valueOf(v.Index(idx)), nil

	case reflect.Map:
		keyType := v.Type().Key()
		if keyType.Kind() != reflect.String {
			return Missing, nil
		}
		mv := v.MapIndex(reflect.ValueOf(segment).Convert(keyType))
		if !mv.IsValid() {
			return Missing, nil
		}
		return valueOf(mv), nil

	case reflect.Struct:
		if f, ok := structField(v, segment); ok {
			return valueOf(f), nil
		}
		return Missing, nil
	}

	return Missing, nil
}

// structField finds an exported field by its json tag name or Go name.
// Fields of embedded structs are promoted.
func structField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tagName, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tagName == "-" {
			continue
		}
		if sf.Anonymous && tagName == "" {
			inner := indirect(v.Field(i))
			if inner.IsValid() && inner.Kind() == reflect.Struct {
				if f, ok := structField(inner, name); ok {
					return f, true
				}
			}
			continue
		}
		if tagName == name || (tagName == "" && sf.Name == name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// indirect follows pointers and interfaces. A nil pointer or interface
// yields the invalid Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isBytes(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8
}

// valueOf returns the interface value held by v; values that cannot be
// interfaced (unexported embedded data) resolve to Missing.
func valueOf(v reflect.Value) any {
	if !v.CanInterface() {
		return Missing
	}
	return v.Interface()
}
