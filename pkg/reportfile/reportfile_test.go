package reportfile_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/rcview/pkg/reportfile"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/units"
	"github.com/yaklabco/rcview/pkg/violation"
)

const sampleReport = `{
  "source": "drc",
  "items": [
    {"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "description": "Track [Net1]", "x": 1000000, "y": 2000000}
  ],
  "markers": [
    {"key": "m1", "x": 1000000, "y": 2000000}
  ],
  "violations": [
    {"code": 23, "message": "clearance violation", "severity": "error",
     "mainItem": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
     "auxItem": "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
     "marker": "m1"},
    {"code": 23, "message": "clearance violation", "severity": "warning", "marker": "m1"},
    {"code": 4, "message": "dangling track", "severity": "warning", "excluded": true}
  ]
}`

func TestParse(t *testing.T) {
	t.Parallel()

	ds, err := reportfile.Parse(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if ds.Source != "drc" {
		t.Errorf("Source = %q, want drc", ds.Source)
	}
	if len(ds.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(ds.Records))
	}
	if ds.Store.Len() != 1 {
		t.Errorf("store has %d markers, want 1", ds.Store.Len())
	}

	first := ds.Records[0]
	if first.Code() != 23 || first.Severity() != severity.Error {
		t.Errorf("first record = code %d severity %v", first.Code(), first.Severity())
	}
	if !first.HasAuxItem() {
		t.Error("first record should have an aux item")
	}
	if first.Marker() == nil {
		t.Error("first record should be anchored to a marker")
	}
	if first.Marker() != ds.Records[1].Marker() {
		t.Error("records sharing a marker key should share the marker")
	}

	third := ds.Records[2]
	if !third.Excluded() {
		t.Error("third record should be excluded")
	}
	if third.Marker() != nil {
		t.Error("third record should be ungrouped")
	}

	// Item descriptions resolve through the item map.
	rep := first.ShowReport(units.Options{Unit: units.Millimeters}, ds.Items)
	if !strings.Contains(rep, "Track [Net1]") {
		t.Errorf("report missing item description: %q", rep)
	}
}

func TestDataset_Provider(t *testing.T) {
	t.Parallel()

	ds, err := reportfile.Parse(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p := ds.Provider()
	if _, ok := p.(*violation.MarkerProvider); !ok {
		t.Errorf("anchored dataset provider = %T, want *MarkerProvider", p)
	}
	if got := p.Count(severity.All); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	flat, err := reportfile.Parse(strings.NewReader(`{
  "source": "erc",
  "violations": [{"code": 1, "message": "unconnected", "severity": "warning"}]
}`))
	if err != nil {
		t.Fatalf("Parse flat: %v", err)
	}
	if _, ok := flat.Provider().(*violation.ListProvider); !ok {
		t.Errorf("flat dataset provider = %T, want *ListProvider", flat.Provider())
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"bad json", `{`},
		{"unknown field", `{"bogus": true, "violations": []}`},
		{"bad severity", `{"violations": [{"code": 1, "message": "x", "severity": "fatal"}]}`},
		{"bad uuid", `{"violations": [{"code": 1, "message": "x", "severity": "error", "mainItem": "nope"}]}`},
		{"unknown marker", `{"violations": [{"code": 1, "message": "x", "severity": "error", "marker": "m9"}]}`},
		{"duplicate marker key", `{"markers": [{"key": "m1"}, {"key": "m1"}], "violations": []}`},
	}

	for _, tc := range cases {
		if _, err := reportfile.Parse(strings.NewReader(tc.input)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
