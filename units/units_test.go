package units

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltinCategories(t *testing.T) {
	want := []string{
		"Length", "Weight/Mass", "Volume", "Temperature", "Time",
		"Area", "Speed", "Pressure", "Energy", "Data",
	}
	if diff := cmp.Diff(want, Builtin().Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinUnits(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{"Length", []string{"mm", "cm", "m", "km", "in", "ft", "yd", "mi"}},
		{"Volume", []string{"ml", "L", "gal", "pt", "qt", "fl oz", "cm³", "m³"}},
		{"Temperature", []string{"°C", "°F", "K"}},
		{"Speed", []string{"m/s", "km/h", "mph", "knot"}},
		{"Data", []string{"bit", "byte", "KB", "MB", "GB", "TB"}},
	}

	for _, tc := range tests {
		got, err := Builtin().Units(tc.category)
		if err != nil {
			t.Fatalf("Units(%q) returned unexpected error: %v", tc.category, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Units(%q) mismatch (-want +got):\n%s", tc.category, diff)
		}
	}
}

func TestUnits_ReturnsCopy(t *testing.T) {
	got, _ := Builtin().Units("Length")
	got[0] = "furlong"

	again, _ := Builtin().Units("Length")
	if again[0] != "mm" {
		t.Fatalf("catalog was mutated through returned slice: %v", again)
	}
}

func TestUnits_UnknownCategory(t *testing.T) {
	_, err := Builtin().Units("Luminosity")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestContains(t *testing.T) {
	c := Builtin()
	if !c.Contains("Length", "ft") {
		t.Errorf("expected Length to contain ft")
	}
	if c.Contains("Length", "kg") {
		t.Errorf("Length must not contain kg")
	}
	if c.Contains("Nope", "m") {
		t.Errorf("unknown category must not contain anything")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		data        string
		explanation string
	}{
		{"", "empty document"},
		{"- name: A\n  units: []\n", "category without units"},
		{"- units: [x]\n", "category without name"},
		{"- name: A\n  units: [x]\n- name: A\n  units: [y]\n", "duplicate category"},
		{"- name: A\n  units: [x, x]\n", "duplicate unit"},
		{"name: A\n", "not a list"},
	}

	for _, tc := range tests {
		if _, err := Parse([]byte(tc.data)); err == nil {
			t.Errorf("expected error for %s", tc.explanation)
		}
	}
}
