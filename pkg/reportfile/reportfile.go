// Package reportfile loads rule-check result files into violation records,
// board items, and markers. A result file is the JSON a checking run writes
// out; rcview consumes it instead of talking to a live board.
package reportfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/yaklabco/rcview/pkg/board"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/units"
	"github.com/yaklabco/rcview/pkg/violation"
)

// fileFormat is the top-level JSON structure of a result file.
type fileFormat struct {
	Source     string          `json:"source"`
	Items      []fileItem      `json:"items,omitempty"`
	Markers    []fileMarker    `json:"markers,omitempty"`
	Violations []fileViolation `json:"violations"`
}

type fileItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	X           int64  `json:"x"`
	Y           int64  `json:"y"`
}

// fileMarker is a marker definition; violations reference it by key.
type fileMarker struct {
	Key string `json:"key"`
	X   int64  `json:"x"`
	Y   int64  `json:"y"`
}

type fileViolation struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	MainItem string `json:"mainItem,omitempty"`
	AuxItem  string `json:"auxItem,omitempty"`
	Marker   string `json:"marker,omitempty"`
	Excluded bool   `json:"excluded,omitempty"`
}

// Item is a board entity reconstructed from a result file.
type Item struct {
	id   uuid.UUID
	desc string
	pos  units.Point
}

// ID implements board.Item.
func (i *Item) ID() uuid.UUID { return i.id }

// Description implements board.Item.
func (i *Item) Description(opts units.Options) string {
	return fmt.Sprintf("%s %s", i.desc, opts.FormatPoint(i.pos))
}

// Dataset is a fully loaded result file.
type Dataset struct {
	// Source names the check that produced the file (e.g. "drc", "erc").
	Source string

	// Records are the violations in file order.
	Records []*violation.Record

	// Items maps identifiers to reconstructed board items.
	Items board.ItemMap

	// Store holds the markers violations are anchored to.
	Store *board.MarkerStore
}

// Provider wraps the dataset in the provider matching its shape: a marker
// provider when any violation is anchored, a plain list provider otherwise.
func (d *Dataset) Provider() violation.Provider {
	if d.Store.Len() > 0 {
		return violation.NewMarkerProvider(d.Store, d.Records...)
	}
	return violation.NewListProvider(d.Records...)
}

// Load reads and parses a result file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes a result file from r.
func Parse(r io.Reader) (*Dataset, error) {
	var raw fileFormat
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	ds := &Dataset{
		Source: raw.Source,
		Items:  make(board.ItemMap, len(raw.Items)),
		Store:  board.NewMarkerStore(),
	}

	for _, it := range raw.Items {
		id, err := uuid.Parse(it.ID)
		if err != nil {
			return nil, fmt.Errorf("item id %q: %w", it.ID, err)
		}
		ds.Items[id] = &Item{id: id, desc: it.Description, pos: units.Point{X: it.X, Y: it.Y}}
	}

	markers := make(map[string]*board.Marker, len(raw.Markers))
	for _, fm := range raw.Markers {
		if fm.Key == "" {
			return nil, fmt.Errorf("marker with empty key")
		}
		if _, dup := markers[fm.Key]; dup {
			return nil, fmt.Errorf("duplicate marker key %q", fm.Key)
		}
		m := board.NewMarker(units.Point{X: fm.X, Y: fm.Y})
		markers[fm.Key] = m
		ds.Store.Add(m)
	}

	for i, fv := range raw.Violations {
		rec, err := parseViolation(fv, markers)
		if err != nil {
			return nil, fmt.Errorf("violation %d: %w", i, err)
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func parseViolation(fv fileViolation, markers map[string]*board.Marker) (*violation.Record, error) {
	sev, err := severity.Parse(fv.Severity)
	if err != nil {
		return nil, err
	}

	rec := violation.NewRecord(fv.Code, sev)
	rec.SetMessage(fv.Message)
	rec.SetExcluded(fv.Excluded)

	main, err := parseOptionalID(fv.MainItem)
	if err != nil {
		return nil, fmt.Errorf("mainItem: %w", err)
	}
	aux, err := parseOptionalID(fv.AuxItem)
	if err != nil {
		return nil, fmt.Errorf("auxItem: %w", err)
	}
	rec.SetItems(main, aux)

	if fv.Marker != "" {
		m, ok := markers[fv.Marker]
		if !ok {
			return nil, fmt.Errorf("unknown marker key %q", fv.Marker)
		}
		rec.SetMarker(m)
	}

	return rec, nil
}

func parseOptionalID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}
