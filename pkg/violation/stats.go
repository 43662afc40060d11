package violation

import "github.com/yaklabco/rcview/pkg/severity"

// Stats summarizes the findings held by a provider.
type Stats struct {
	// Total is the number of findings regardless of filter.
	Total int

	// BySeverity counts findings per severity level.
	BySeverity map[severity.Severity]int

	// Excluded is the number of findings marked excluded.
	Excluded int

	// ActiveErrors is the number of error findings not marked excluded.
	ActiveErrors int
}

// Tally walks every finding in the provider and returns aggregate counts.
// The provider's severity filter is widened to severity.All for the walk;
// callers that need a narrower filter must reapply it afterwards.
func Tally(p Provider) Stats {
	stats := Stats{
		BySeverity: make(map[severity.Severity]int),
	}

	p.SetSeverityFilter(severity.All)
	total := p.Count(severity.All)
	for i := 0; i < total; i++ {
		rec, err := p.ItemAt(i)
		if err != nil {
			break
		}
		stats.Total++
		stats.BySeverity[rec.Severity()]++
		if rec.Excluded() {
			stats.Excluded++
		} else if rec.Severity() == severity.Error {
			stats.ActiveErrors++
		}
	}
	return stats
}
