// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldSource = "source"

	// Filter fields.
	FieldSeverity = "severity"
	FieldFilter   = "filter"
	FieldUnits    = "units"

	// Statistics fields.
	FieldViolations = "violations"
	FieldMarkers    = "markers"
	FieldErrors     = "errors"
	FieldWarnings   = "warnings"
	FieldExcluded   = "excluded"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
