package violation_test

import (
	"testing"

	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/violation"
)

func TestTally(t *testing.T) {
	t.Parallel()

	excluded := newRecord(7, severity.Warning)
	excluded.SetExcluded(true)

	p := violation.NewListProvider(
		newRecord(2, severity.Error),
		newRecord(2, severity.Error),
		excluded,
		newRecord(4, severity.Info),
	)

	stats := violation.Tally(p)
	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if got := stats.BySeverity[severity.Error]; got != 2 {
		t.Errorf("BySeverity[Error] = %d, want 2", got)
	}
	if stats.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", stats.Excluded)
	}
	if stats.ActiveErrors != 2 {
		t.Errorf("ActiveErrors = %d, want 2", stats.ActiveErrors)
	}
}

func TestTally_WidensFilter(t *testing.T) {
	t.Parallel()

	p := violation.NewListProvider(
		newRecord(1, severity.Error),
		newRecord(2, severity.Warning),
	)
	p.SetSeverityFilter(severity.Mask(severity.Warning))

	stats := violation.Tally(p)
	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2 (filter must not hide findings)", stats.Total)
	}
}

func TestTally_ExcludedErrorsAreNotActive(t *testing.T) {
	t.Parallel()

	rec := newRecord(3, severity.Error)
	rec.SetExcluded(true)
	p := violation.NewListProvider(rec)

	stats := violation.Tally(p)
	if stats.ActiveErrors != 0 {
		t.Errorf("ActiveErrors = %d, want 0", stats.ActiveErrors)
	}
}
