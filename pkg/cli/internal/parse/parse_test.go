package parse

import (
	"reflect"
	"testing"
)

func TestKeyValue(t *testing.T) {
	tests := []struct {
		in         string
		delims     []rune
		key, value string
		ok         bool
	}{
		{"city=Berlin", nil, "city", "Berlin", true},
		{"expr=a=b", nil, "expr", "a=b", true},
		{"Content-Type: text/html", []rune{':'}, "Content-Type", " text/html", true},
		{"k:v", []rune{'=', ':'}, "k", "v", true},
		{"novalue", nil, "", "", false},
	}
	for _, tt := range tests {
		key, value, ok := KeyValue(tt.in, tt.delims...)
		if key != tt.key || value != tt.value || ok != tt.ok {
			t.Errorf("KeyValue(%q) = %q, %q, %v; want %q, %q, %v", tt.in, key, value, ok, tt.key, tt.value, tt.ok)
		}
	}
}

func TestAssignments(t *testing.T) {
	got, err := Assignments([]string{"city=Berlin", " zip =10115", "city=Paris", "empty="})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"city": "Paris", "zip": "10115", "empty": ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Assignments() = %v, want %v", got, want)
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := Assignments([]string{bad}); err == nil {
			t.Errorf("Assignments(%q) expected error", bad)
		}
	}
}
