// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/rcview/pkg/severity"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Action  lipgloss.Style

	// Tree components
	GroupLabel lipgloss.Style
	Message    lipgloss.Style
	Count      lipgloss.Style
	Branch     lipgloss.Style
	Position   lipgloss.Style
	ErrorCode  lipgloss.Style
	Excluded   lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		// Severity colors
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Action:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),

		// Tree components
		GroupLabel: lipgloss.NewStyle().Bold(true),
		Message:    lipgloss.NewStyle(),
		Count:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Branch:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Position:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		ErrorCode:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Excluded:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),

		// Summary styles
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:        plain,
		Warning:      plain,
		Info:         plain,
		Action:       plain,
		GroupLabel:   plain,
		Message:      plain,
		Count:        plain,
		Branch:       plain,
		Position:     plain,
		ErrorCode:    plain,
		Excluded:     plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev severity.Severity) string {
	switch sev {
	case severity.Error:
		return s.Error.Render("error")
	case severity.Warning:
		return s.Warning.Render("warning")
	case severity.Info:
		return s.Info.Render("info")
	case severity.Action:
		return s.Action.Render("action")
	default:
		return sev.String()
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
