package extract

import (
	"errors"
	"strings"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// Sequences
// =============================================================================

func TestExtractSequenceErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		path    string
		wantMsg string
	}{
		{"segment is not a number", []any{}, "test", "of a number"},
		{"segment is negative", []any{}, "-4", "greater"},
		{"negative infinity", []any{1}, "-Infinity", "greater"},
		{"NaN literal", []any{1}, "NaN", "of a number"},
		{"nested sequence", map[string]any{"list": []any{1}}, "list.name", "of a number"},
		{"typed slice", []string{"a"}, "name", "of a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Extract(tt.data, tt.path)
			if err == nil {
				t.Fatalf("Extract(%v, %q) = %v, want error", tt.data, tt.path, v)
			}
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("error %v does not match ErrInvalidPath", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
			if !IsMissing(v) {
				t.Errorf("value on error = %v, want Missing", v)
			}
		})
	}
}

func TestInvalidPathErrorFields(t *testing.T) {
	_, err := Extract(map[string]any{"items": []any{}}, "items.-1")

	var pathErr *InvalidPathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("error %v is not *InvalidPathError", err)
	}
	if pathErr.Segment != "-1" {
		t.Errorf("Segment = %q, want %q", pathErr.Segment, "-1")
	}
	if pathErr.Path != "items.-1" {
		t.Errorf("Path = %q, want %q", pathErr.Path, "items.-1")
	}
}

func TestExtractSequenceValues(t *testing.T) {
	tests := []struct {
		name string
		data any
		path string
		want any
	}{
		{"out of range", []any{1}, "2", Missing},
		{"in range", []any{1, 2, 3}, "2", 3},
		{"index zero", []any{"first"}, "0", "first"},
		{"zero on empty", []any{}, "0", Missing},
		{"fraction passes check but misses", []any{1, 2}, "1.5", Missing},
		{"whitespace passes check but misses", []any{1, 2}, " 1", Missing},
		{"leading zero misses", []any{1, 2}, "01", Missing},
		{"hex passes check but misses", []any{1, 2}, "0x1", Missing},
		{"exponent passes check but misses", []any{1, 2}, "1e0", Missing},
		{"empty segment is zero but misses", []any{1}, "", Missing},
		{"negative zero misses", []any{1}, "-0", Missing},
		{"infinity misses", []any{1}, "Infinity", Missing},
		{"huge index misses", []any{1}, "99999999999999999999999", Missing},
		{"typed slice", []string{"a", "b"}, "1", "b"},
		{"array", [2]int{7, 8}, "0", 7},
		{"bytes are scalar", []byte("abc"), "0", Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.data, tt.path)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract(%v, %q) = %v, want %v", tt.data, tt.path, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Mappings
// =============================================================================

func TestExtractMappingValues(t *testing.T) {
	tests := []struct {
		name string
		data any
		path string
		want any
	}{
		{"missing key", map[string]any{}, "test", Missing},
		{"missing deep path", map[string]any{}, "test.test.test.0.test", Missing},
		{"present key", map[string]any{"test": 4}, "test", 4},
		{"path past scalar", map[string]any{"test": 4}, "test.more", Missing},
		{"path past null", map[string]any{"test": nil}, "test.more", Missing},
		{"trailing dot", map[string]any{"a": "x"}, "a.", "x"},
		{"empty key", map[string]any{"": "root"}, "", "root"},
		{"double dot", map[string]any{"a": map[string]any{"": map[string]any{"b": 1}}}, "a..b", 1},
		{"typed map", map[string]int{"n": 3}, "n", 3},
		{"named key type", map[label]string{"k": "v"}, "k", "v"},
		{"non-string keys", map[int]string{1: "v"}, "1", Missing},
		{"scalar root", "text", "length", Missing},
		{"nil root", nil, "a", Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.data, tt.path)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract(%v, %q) = %v, want %v", tt.data, tt.path, got, tt.want)
			}
		})
	}
}

type label string

type address struct {
	City string `json:"city"`
	Zip  int
}

type Base struct {
	ID string `json:"id"`
}

type person struct {
	Base
	Name    string    `json:"name,omitempty"`
	Secret  string    `json:"-"`
	Home    *address  `json:"home"`
	Past    []address `json:"past"`
	private string
}

func TestExtractStructs(t *testing.T) {
	p := &person{
		Base:    Base{ID: "p-1"},
		Name:    "Ada",
		Secret:  "hidden",
		Home:    &address{City: "Winti", Zip: 8400},
		Past:    []address{{City: "Zurich", Zip: 8000}},
		private: "nope",
	}

	tests := []struct {
		path string
		want any
	}{
		{"name", "Ada"},
		{"Name", Missing},
		{"id", "p-1"},
		{"home.city", "Winti"},
		{"home.Zip", 8400},
		{"past.0.city", "Zurich"},
		{"Secret", Missing},
		{"private", Missing},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Extract(p, tt.path)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract(person, %q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	t.Run("nil pointer", func(t *testing.T) {
		got, err := Extract(&person{}, "home.city")
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if !IsMissing(got) {
			t.Errorf("got %v, want Missing", got)
		}
	})

	t.Run("nil fields are present", func(t *testing.T) {
		type record struct {
			Home  *address   `json:"home"`
			At    *time.Time `json:"at"`
			Cause error      `json:"cause"`
		}
		r := record{Cause: (*InvalidPathError)(nil)}

		for _, path := range []string{"home", "at", "cause"} {
			v, found, err := Lookup(r, path)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", path, err)
			}
			if !found {
				t.Errorf("Lookup(%q) found = false, want true", path)
			}
			if rv := reflect.ValueOf(v); rv.Kind() != reflect.Pointer || !rv.IsNil() {
				t.Errorf("Lookup(%q) = %#v, want typed nil pointer", path, v)
			}
		}
	})
}

// =============================================================================
// Nested
// =============================================================================

func TestExtractNested(t *testing.T) {
	got, err := Extract(map[string]any{"test": []any{1, 2, 3}}, "test.2")
	if err != nil || got != 3 {
		t.Errorf("Extract(test.2) = %v, %v; want 3", got, err)
	}

	got, err = Extract(map[string]any{"test": []any{1, 2, map[string]any{"do": "that"}}}, "test.2.do")
	if err != nil || got != "that" {
		t.Errorf("Extract(test.2.do) = %v, %v; want that", got, err)
	}
}

func TestExtractStopsAtFirstMissing(t *testing.T) {
	// Later segments are not validated once a level is missing.
	got, err := Extract(map[string]any{}, "absent.-1.x")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !IsMissing(got) {
		t.Errorf("got %v, want Missing", got)
	}
}

func TestLookupDistinguishesNull(t *testing.T) {
	data := map[string]any{"present": nil}

	v, found, err := Lookup(data, "present")
	if err != nil || !found || v != nil {
		t.Errorf("Lookup(present) = %v, %v, %v; want nil, true, nil", v, found, err)
	}

	v, found, err = Lookup(data, "absent")
	if err != nil || found || v != nil {
		t.Errorf("Lookup(absent) = %v, %v, %v; want nil, false, nil", v, found, err)
	}

	_, found, err = Lookup([]any{}, "x")
	if err == nil || found {
		t.Errorf("Lookup([], x) = %v, %v; want error", found, err)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"a", []string{"a"}},
		{"city.0.name", []string{"city", "0", "name"}},
		{"a.", []string{"a"}},
		{"a..", []string{"a", ""}},
		{".", []string{""}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := ParsePath(tt.path)
			if diff := cmp.Diff(tt.want, p.Segments()); diff != "" {
				t.Errorf("ParsePath(%q).Segments() mismatch (-want +got):\n%s", tt.path, diff)
			}
			if p.String() != tt.path {
				t.Errorf("String() = %q, want %q", p.String(), tt.path)
			}
		})
	}

	var zero Path
	if got, _ := zero.Extract(map[string]any{"": 1}); got != 1 {
		t.Errorf("zero Path Extract = %v, want 1", got)
	}
}

func TestExtractReturnsContainers(t *testing.T) {
	city := map[string]any{"name": "Winti", "tags": []any{"zh", 8400}}
	data := map[string]any{"cities": []any{city}}

	tests := []struct {
		path string
		want any
	}{
		{"cities", []any{city}},
		{"cities.0", city},
		{"cities.0.tags", []any{"zh", 8400}},
		{"", Missing},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Extract(data, tt.path)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(func(a, b missing) bool { return true })); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestExtractIsPure(t *testing.T) {
	data := map[string]any{"city": []any{map[string]any{"name": "Winti", "zip": 8400}}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := Extract(data, "city.0.zip")
				if err != nil || v != 8400 {
					t.Errorf("Extract() = %v, %v", v, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestExtractDeepPath(t *testing.T) {
	var data any = "leaf"
	segments := make([]string, 10000)
	for i := range segments {
		data = map[string]any{"n": data}
		segments[i] = "n"
	}

	got, err := Extract(data, strings.Join(segments, "."))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "leaf" {
		t.Errorf("got %v, want leaf", got)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2", 2, true},
		{" 2 ", 2, true},
		{"", 0, true},
		{"1.5", 1.5, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"-4", -4, true},
		{"+4", 4, true},
		{"0x10", 16, true},
		{"0b101", 5, true},
		{"0o17", 15, true},
		{"0x", 0, false},
		{"-0x10", 0, false},
		{"abc", 0, false},
		{"1_000", 0, false},
		{"inf", 0, false},
		{"NaN", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumber(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("parseNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
