package template

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/typeahead-kit/typeahead/pkg/extract"
)

func TestFormatValue(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"missing", extract.Missing, ""},
		{"nil", nil, ""},
		{"integral float", 8400.0, "8400"},
		{"fraction", 0.25, "0.25"},
		{"zero", 0.0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"negative zero float32", float32(math.Copysign(0, -1)), "0"},
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"json number", json.Number("12.50"), "12.50"},
		{"uint", uint8(7), "7"},
		{"nested sequence", []any{1, []any{2, 3}}, "1,2,3"},
		{"nil slice", []string(nil), ""},
		{"stringer", label("a"), "label:a"},
		{"time pointer", &at, at.String()},
		{"nil time pointer", (*time.Time)(nil), ""},
		{"nil error pointer", (*codeError)(nil), ""},
		{"error value", codeError{Code: 3}, "code 3"},
		{"nil map pointer", (*map[string]any)(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.expected {
				t.Errorf("FormatValue(%#v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestRenderNegativeZero(t *testing.T) {
	result, err := Render("[[v]]", map[string]any{"v": math.Copysign(0, -1)})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if result != "0" {
		t.Errorf("Render() = %q, want %q", result, "0")
	}
}
