package severity_test

import (
	"testing"

	"github.com/yaklabco/rcview/pkg/severity"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  severity.Severity
	}{
		{"info", severity.Info},
		{"warning", severity.Warning},
		{"warn", severity.Warning},
		{"Error", severity.Error},
		{"ACTION", severity.Action},
		{"  error  ", severity.Error},
		{"", severity.Undefined},
	}

	for _, tt := range tests {
		got, err := severity.Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := severity.Parse("fatal"); err == nil {
		t.Error("expected error for unknown severity")
	}
}

func TestMask_Matches(t *testing.T) {
	t.Parallel()

	mask := severity.Mask(severity.Error | severity.Warning)

	if !mask.Matches(severity.Error) {
		t.Error("mask should match Error")
	}
	if !mask.Matches(severity.Warning) {
		t.Error("mask should match Warning")
	}
	if mask.Matches(severity.Info) {
		t.Error("mask should not match Info")
	}
	if mask.Matches(severity.Undefined) {
		t.Error("restricted mask should not match Undefined")
	}
	if !severity.All.Matches(severity.Undefined) {
		t.Error("All should match Undefined")
	}
}

func TestMask_WithWithout(t *testing.T) {
	t.Parallel()

	mask := severity.Mask(0).With(severity.Error).With(severity.Info)
	if !mask.Has(severity.Error) || !mask.Has(severity.Info) {
		t.Errorf("With: mask = %v", mask)
	}

	mask = mask.Without(severity.Error)
	if mask.Has(severity.Error) {
		t.Error("Without did not clear Error")
	}
	if !mask.Has(severity.Info) {
		t.Error("Without cleared unrelated flag")
	}
}

func TestParseMask_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"all", "all"},
		{"", "all"},
		{"error", "error"},
		{"error,warning", "error,warning"},
		{"warning, error", "error,warning"},
		{"info,action", "info,action"},
	}

	for _, tt := range tests {
		mask, err := severity.ParseMask(tt.input)
		if err != nil {
			t.Fatalf("ParseMask(%q) error: %v", tt.input, err)
		}
		if got := mask.String(); got != tt.want {
			t.Errorf("ParseMask(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseMask_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := severity.ParseMask("error,bogus"); err == nil {
		t.Error("expected error for unknown severity in list")
	}
	if _, err := severity.ParseMask("undefined"); err == nil {
		t.Error("expected error for undefined in filter")
	}
}
