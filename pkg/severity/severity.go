// Package severity defines the severity levels attached to rule-check
// violations and the bitwise masks used to filter them.
package severity

import (
	"fmt"
	"strings"
)

// Severity classifies a single violation. Values are bit flags so that a
// Mask can select any combination of them.
type Severity int

const (
	// Undefined marks a violation whose severity has not been assigned.
	Undefined Severity = 0

	// Info is a purely informational finding.
	Info Severity = 1 << 0
	// Warning is a finding that should be reviewed but does not block.
	Warning Severity = 1 << 1
	// Error is a rule violation that must be resolved.
	Error Severity = 1 << 2
	// Action records a change made by a tool (component added, footprint
	// updated) rather than a problem found.
	Action Severity = 1 << 3
)

// Mask is a bitwise OR of severities used to filter violation lists.
type Mask int

// All selects every defined severity.
const All Mask = Mask(Info | Warning | Error | Action)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Action:
		return "action"
	case Undefined:
		return "undefined"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Parse converts a severity name into a Severity.
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "action":
		return Action, nil
	case "undefined", "":
		return Undefined, nil
	default:
		return Undefined, fmt.Errorf("unknown severity: %q", name)
	}
}

// Matches reports whether the severity is selected by the mask. An
// Undefined severity matches only the All mask, mirroring the behavior of
// providers that treat unassigned findings as always visible.
func (m Mask) Matches(s Severity) bool {
	if m == All {
		return true
	}
	return m&Mask(s) != 0
}

// Has reports whether the mask includes the given severity flag.
func (m Mask) Has(s Severity) bool {
	return m&Mask(s) != 0
}

// With returns a mask that additionally selects s.
func (m Mask) With(s Severity) Mask {
	return m | Mask(s)
}

// Without returns a mask that no longer selects s.
func (m Mask) Without(s Severity) Mask {
	return m &^ Mask(s)
}

// String renders the mask as a comma-separated list of severity names.
func (m Mask) String() string {
	if m == All {
		return "all"
	}
	var names []string
	for _, s := range []Severity{Error, Warning, Info, Action} {
		if m.Has(s) {
			names = append(names, s.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseMask converts a comma-separated list of severity names ("error,warning")
// into a Mask. The special values "all" and "" select every severity.
func ParseMask(list string) (Mask, error) {
	trimmed := strings.TrimSpace(list)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return All, nil
	}

	var mask Mask
	for _, part := range strings.Split(trimmed, ",") {
		sev, err := Parse(part)
		if err != nil {
			return 0, err
		}
		if sev == Undefined {
			return 0, fmt.Errorf("severity %q cannot be used in a filter", part)
		}
		mask = mask.With(sev)
	}
	return mask, nil
}
