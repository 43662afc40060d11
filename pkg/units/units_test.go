package units_test

import (
	"testing"

	"github.com/yaklabco/rcview/pkg/units"
)

func TestParseUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  units.Unit
	}{
		{"mm", units.Millimeters},
		{"", units.Millimeters},
		{"in", units.Inches},
		{"inches", units.Inches},
		{"MILS", units.Mils},
	}

	for _, tt := range tests {
		got, err := units.ParseUnit(tt.input)
		if err != nil {
			t.Fatalf("ParseUnit(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := units.ParseUnit("furlongs"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestFormatPoint(t *testing.T) {
	t.Parallel()

	p := units.Point{X: 25_400_000, Y: 50_800_000} // 1in x 2in

	tests := []struct {
		unit units.Unit
		want string
	}{
		{units.Millimeters, "@(25.4000 mm, 50.8000 mm)"},
		{units.Inches, "@(1.0000 in, 2.0000 in)"},
		{units.Mils, "@(1000.00 mils, 2000.00 mils)"},
	}

	for _, tt := range tests {
		opts := units.Options{Unit: tt.unit}
		if got := opts.FormatPoint(p); got != tt.want {
			t.Errorf("FormatPoint(%v) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	opts := units.Options{Unit: units.Millimeters}
	if got := opts.FormatValue(1_500_000); got != "1.5000 mm" {
		t.Errorf("FormatValue = %q", got)
	}
}
