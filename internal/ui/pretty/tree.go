package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/rcview/pkg/tree"
)

// Branch glyphs for the rendered tree.
const (
	glyphMid  = "├─ "
	glyphLast = "└─ "
	glyphPipe = "│  "
	glyphGap  = "   "
)

// RenderTree renders the full diagnostics tree as indented text, one node
// per line, clipped to width columns (0 disables clipping). Group nodes
// carry a finding count, primaries show the severity, error code, and
// message, secondaries the second offending item.
func (s *Styles) RenderTree(m *tree.Model, width int) (string, error) {
	var builder strings.Builder

	top, err := m.Children(tree.Root)
	if err != nil {
		return "", err
	}

	clip := lipgloss.NewStyle()
	if width > 0 {
		clip = clip.MaxWidth(width)
	}

	for i, h := range top {
		last := i == len(top)-1
		if err := s.renderNode(&builder, m, h, clip, "", last); err != nil {
			return "", err
		}
	}

	return builder.String(), nil
}

func (s *Styles) renderNode(builder *strings.Builder, m *tree.Model, h tree.Handle, clip lipgloss.Style, prefix string, last bool) error {
	line, err := s.FormatNode(m, h)
	if err != nil {
		return err
	}

	glyph := glyphMid
	childPrefix := prefix + glyphPipe
	if last {
		glyph = glyphLast
		childPrefix = prefix + glyphGap
	}
	builder.WriteString(clip.Render(prefix+s.Branch.Render(glyph)+line) + "\n")

	children, err := m.Children(h)
	if err != nil {
		return err
	}
	for i, child := range children {
		if err := s.renderNode(builder, m, child, clip, childPrefix, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}

// FormatNode formats a single tree node without branch glyphs.
func (s *Styles) FormatNode(m *tree.Model, h tree.Handle) (string, error) {
	value, err := m.Value(h)
	if err != nil {
		return "", err
	}
	attr, err := m.Attr(h)
	if err != nil {
		return "", err
	}
	kind, err := m.Kind(h)
	if err != nil {
		return "", err
	}
	rec, err := m.Record(h)
	if err != nil {
		return "", err
	}

	if attr.Excluded {
		return s.Excluded.Render(value), nil
	}

	switch kind {
	case tree.KindGroup:
		return s.GroupLabel.Render(value), nil
	case tree.KindPrimary:
		line := s.FormatSeverity(rec.Severity()) + "  " + s.Message.Render(value)
		line += "  " + s.ErrorCode.Render(fmt.Sprintf("(%d)", rec.Code()))
		return line, nil
	default:
		return s.Dim.Render(value), nil
	}
}
