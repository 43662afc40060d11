package cli

import "github.com/yaklabco/rcview/pkg/violation"

// Exit codes for rcview.
const (
	// ExitSuccess indicates successful execution with no error findings.
	ExitSuccess = 0

	// ExitViolationsFound indicates the report contains error-severity findings.
	ExitViolationsFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromStats determines the exit code from report statistics.
// Excluded findings do not affect the exit code.
func ExitCodeFromStats(stats violation.Stats) int {
	if stats.ActiveErrors > 0 {
		return ExitViolationsFound
	}
	return ExitSuccess
}
