package violation_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/rcview/pkg/board"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/units"
	"github.com/yaklabco/rcview/pkg/violation"
)

func newRecord(code int, sev severity.Severity) *violation.Record {
	r := violation.NewRecord(code, sev)
	r.SetMessage("violation")
	return r
}

func TestListProvider_CountAndFilter(t *testing.T) {
	t.Parallel()

	p := violation.NewListProvider(
		newRecord(1, severity.Error),
		newRecord(2, severity.Warning),
		newRecord(3, severity.Error),
		newRecord(4, severity.Info),
	)

	if got := p.Count(severity.All); got != 4 {
		t.Errorf("Count(All) = %d, want 4", got)
	}
	if got := p.Count(severity.Mask(severity.Error)); got != 2 {
		t.Errorf("Count(Error) = %d, want 2", got)
	}
	if got := p.Count(severity.Mask(severity.Error | severity.Warning)); got != 3 {
		t.Errorf("Count(Error|Warning) = %d, want 3", got)
	}

	p.SetSeverityFilter(severity.Mask(severity.Error))
	r, err := p.ItemAt(1)
	if err != nil {
		t.Fatalf("ItemAt(1) error: %v", err)
	}
	if r.Code() != 3 {
		t.Errorf("filtered ItemAt(1).Code = %d, want 3", r.Code())
	}
}

func TestListProvider_OutOfRange(t *testing.T) {
	t.Parallel()

	p := violation.NewListProvider(newRecord(1, severity.Error))

	for _, index := range []int{-1, 1, 100} {
		if _, err := p.ItemAt(index); !errors.Is(err, violation.ErrOutOfRange) {
			t.Errorf("ItemAt(%d) error = %v, want ErrOutOfRange", index, err)
		}
		if err := p.DeleteAt(index, false); !errors.Is(err, violation.ErrOutOfRange) {
			t.Errorf("DeleteAt(%d) error = %v, want ErrOutOfRange", index, err)
		}
	}
}

func TestListProvider_DeleteAt(t *testing.T) {
	t.Parallel()

	p := violation.NewListProvider(
		newRecord(1, severity.Error),
		newRecord(2, severity.Warning),
		newRecord(3, severity.Error),
	)
	p.SetSeverityFilter(severity.Mask(severity.Error))

	// Index 0 in the filtered view is code 1.
	if err := p.DeleteAt(0, false); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}

	if got := p.Count(severity.All); got != 2 {
		t.Errorf("Count(All) = %d, want 2", got)
	}
	r, err := p.ItemAt(0)
	if err != nil {
		t.Fatalf("ItemAt(0) error: %v", err)
	}
	if r.Code() != 3 {
		t.Errorf("remaining filtered record code = %d, want 3", r.Code())
	}
}

func TestListProvider_DeleteAll(t *testing.T) {
	t.Parallel()

	p := violation.NewListProvider(newRecord(1, severity.Error), newRecord(2, severity.Info))
	p.DeleteAll()

	if got := p.Count(severity.All); got != 0 {
		t.Errorf("Count after DeleteAll = %d, want 0", got)
	}
	if _, err := p.ItemAt(0); !errors.Is(err, violation.ErrOutOfRange) {
		t.Errorf("ItemAt after DeleteAll error = %v, want ErrOutOfRange", err)
	}
}

func TestMarkerProvider_DeepDelete(t *testing.T) {
	t.Parallel()

	store := board.NewMarkerStore()
	marker := board.NewMarker(units.Point{X: 10, Y: 20})
	store.Add(marker)

	r1 := newRecord(1, severity.Error)
	r1.SetMarker(marker)
	r2 := newRecord(2, severity.Error)
	r2.SetMarker(marker)

	p := violation.NewMarkerProvider(store, r1, r2)

	// Deleting one of two records sharing a marker keeps the marker.
	if err := p.DeleteAt(0, true); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	if !store.Contains(marker.ID()) {
		t.Error("marker dropped while still referenced")
	}

	// Deleting the last record deep drops the marker.
	if err := p.DeleteAt(0, true); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	if store.Contains(marker.ID()) {
		t.Error("marker retained after deep delete of last record")
	}
}

func TestMarkerProvider_ShallowDeleteKeepsMarker(t *testing.T) {
	t.Parallel()

	store := board.NewMarkerStore()
	marker := board.NewMarker(units.Point{})
	store.Add(marker)

	r := newRecord(1, severity.Error)
	r.SetMarker(marker)

	p := violation.NewMarkerProvider(store, r)

	if err := p.DeleteAt(0, false); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	if !store.Contains(marker.ID()) {
		t.Error("shallow delete removed the marker from the store")
	}
	if got := p.Count(severity.All); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
}

func TestMarkerProvider_DeleteAll(t *testing.T) {
	t.Parallel()

	store := board.NewMarkerStore()
	m1 := board.NewMarker(units.Point{})
	m2 := board.NewMarker(units.Point{})
	store.Add(m1)
	store.Add(m2)

	r1 := newRecord(1, severity.Error)
	r1.SetMarker(m1)
	r2 := newRecord(2, severity.Warning)
	r2.SetMarker(m2)

	p := violation.NewMarkerProvider(store, r1, r2)
	p.DeleteAll()

	if got := p.Count(severity.All); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
	if store.Len() != 0 {
		t.Errorf("store.Len = %d after DeleteAll, want 0", store.Len())
	}
}

func TestMarkerProvider_AddRegistersMarker(t *testing.T) {
	t.Parallel()

	store := board.NewMarkerStore()
	p := violation.NewMarkerProvider(store)

	marker := board.NewMarker(units.Point{})
	r := newRecord(9, severity.Action)
	r.SetMarker(marker)
	p.Add(r)

	if !store.Contains(marker.ID()) {
		t.Error("Add did not register the marker")
	}
	if got := p.Count(severity.Mask(severity.Action)); got != 1 {
		t.Errorf("Count(Action) = %d, want 1", got)
	}
}
