// Package report provides the diagnostic sink that long-running procedures
// write severity-tagged messages into. A sink decouples a checking routine
// from whatever will eventually display its output, and lets it report many
// problems without stopping at the first.
package report

import "github.com/yaklabco/rcview/pkg/severity"

// Reporter accepts severity-tagged text messages. Head messages sort before
// everything else (intro lines), tail messages after (status lines); plain
// Report goes in the body. Sinks that have no ordering treat all three the
// same.
type Reporter interface {
	// Report adds a body message.
	Report(text string, sev severity.Severity)

	// ReportHead adds a message that renders before all others.
	ReportHead(text string, sev severity.Severity)

	// ReportTail adds a message that renders after all others.
	ReportTail(text string, sev severity.Severity)

	// HasMessage reports whether anything has been reported.
	HasMessage() bool
}
