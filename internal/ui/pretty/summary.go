package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/violation"
)

// FormatSummaryOneLine formats provider statistics as a single line.
// Example: "12 violations (8 errors, 4 warnings), 2 excluded".
func (s *Styles) FormatSummaryOneLine(stats violation.Stats) string {
	if stats.Total == 0 {
		return s.Success.Render("No violations found") + "\n"
	}

	word := "violations"
	if stats.Total == 1 {
		word = "violation"
	}

	var severityParts []string
	if errors := stats.BySeverity[severity.Error]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.BySeverity[severity.Warning]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if infos := stats.BySeverity[severity.Info]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}
	if actions := stats.BySeverity[severity.Action]; actions > 0 {
		severityParts = append(severityParts, s.Action.Render(fmt.Sprintf("%d actions", actions)))
	}

	line := fmt.Sprintf("%d %s", stats.Total, word)
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}
	if stats.Excluded > 0 {
		line += ", " + s.Dim.Render(fmt.Sprintf("%d excluded", stats.Excluded))
	}

	return line + "\n"
}
