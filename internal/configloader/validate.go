package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rcview/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "severities").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a merged configuration for consistency.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if _, err := cfg.SeverityMask(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severities",
			Value:   cfg.Severities,
			Message: err.Error(),
		})
	}

	if _, err := cfg.UnitOptions(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "units",
			Value:   cfg.Units,
			Message: err.Error(),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("must be one of auto, always, never (got %q)", cfg.Color),
		})
	}

	for _, code := range cfg.ExcludedCodes {
		if code < 0 {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "excluded_codes",
				Value:   code,
				Message: "negative rule codes never match",
			})
		}
	}

	return result
}
