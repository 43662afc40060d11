// Package treeview implements the interactive violation browser. It is a
// Bubble Tea front end over the diagnostics tree model: navigation,
// expand/collapse, exclusion toggling, and deletion of findings.
package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/rcview/internal/ui/pretty"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/tree"
	"github.com/yaklabco/rcview/pkg/violation"
)

// row is one visible line of the flattened tree.
type row struct {
	handle tree.Handle
	depth  int
}

// Model is the Bubble Tea model for the violation browser.
type Model struct {
	tree      *tree.Model
	provider  violation.Provider
	styles    *pretty.Styles
	vp        viewport.Model
	rows      []row
	cursor    int
	collapsed map[tree.Handle]bool
	status    string
	width     int
	height    int
	ready     bool
	dirty     bool
}

// New creates a browser over an already-populated tree model. The browser
// registers itself as the model's listener for the life of the program.
func New(t *tree.Model, p violation.Provider, styles *pretty.Styles) *Model {
	m := &Model{
		tree:      t,
		provider:  p,
		styles:    styles,
		collapsed: make(map[tree.Handle]bool),
		width:     80,
		height:    24,
	}
	t.SetListener(m)
	m.reflatten()
	return m
}

// StructureChanged implements tree.Listener. Subtree handles are about to
// be invalidated, so collapsed state rooted there is dropped.
func (m *Model) StructureChanged(h tree.Handle) {
	if h.IsRoot() {
		m.collapsed = make(map[tree.Handle]bool)
	}
	m.dirty = true
}

// ValueChanged implements tree.Listener.
func (m *Model) ValueChanged(tree.Handle) {
	m.dirty = true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.rows) - 1
	case "pgup":
		m.moveCursor(-m.vp.Height)
	case "pgdown":
		m.moveCursor(m.vp.Height)

	case "enter", " ":
		m.toggleExpand()
	case "x":
		m.toggleExclusion()
	case "d":
		m.deleteCurrent(false)
	case "D":
		m.deleteCurrent(true)
	case "e":
		m.cycleFilter(severity.Error)
	case "w":
		m.cycleFilter(severity.Warning)
	case "i":
		m.cycleFilter(severity.Info)
	case "a":
		m.tree.SetSeverityFilter(severity.All)
		m.status = "filter: all"
	}

	if m.dirty {
		m.reflatten()
	}
	m.clampCursor()
	m.refresh()
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) current() (tree.Handle, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return tree.Handle{}, false
	}
	return m.rows[m.cursor].handle, true
}

func (m *Model) toggleExpand() {
	h, ok := m.current()
	if !ok {
		return
	}
	container, err := m.tree.IsContainer(h)
	if err != nil || !container {
		return
	}
	m.collapsed[h] = !m.collapsed[h]
	m.reflatten()
}

func (m *Model) toggleExclusion() {
	h, ok := m.current()
	if !ok {
		return
	}
	rec, err := m.tree.Record(h)
	if err != nil || rec == nil {
		return
	}
	rec.SetExcluded(!rec.Excluded())
	if err := m.tree.ValueChanged(h); err != nil {
		m.status = err.Error()
		return
	}
	if rec.Excluded() {
		m.status = "excluded"
	} else {
		m.status = "included"
	}
}

func (m *Model) deleteCurrent(deep bool) {
	h, ok := m.current()
	if !ok {
		return
	}
	if err := m.tree.Delete(h, deep); err != nil {
		m.status = err.Error()
		return
	}
	if deep {
		m.status = "deleted (with marker)"
	} else {
		m.status = "deleted"
	}
}

// cycleFilter toggles one severity in the active mask. An empty result
// falls back to showing everything.
func (m *Model) cycleFilter(sev severity.Severity) {
	mask := m.tree.SeverityFilter()
	if mask == severity.All {
		mask = severity.Mask(sev)
	} else if mask.Has(sev) {
		mask = mask.Without(sev)
	} else {
		mask = mask.With(sev)
	}
	if mask == 0 {
		mask = severity.All
	}
	m.tree.SetSeverityFilter(mask)
	m.status = "filter: " + mask.String()
}

// reflatten rebuilds the visible row list from the tree. Collapsed groups
// contribute a single row.
func (m *Model) reflatten() {
	m.dirty = false
	m.rows = m.rows[:0]

	top, err := m.tree.Children(tree.Root)
	if err != nil {
		return
	}
	for _, h := range top {
		m.appendRows(h, 0)
	}
	m.clampCursor()
}

func (m *Model) appendRows(h tree.Handle, depth int) {
	m.rows = append(m.rows, row{handle: h, depth: depth})
	if m.collapsed[h] {
		return
	}
	children, err := m.tree.Children(h)
	if err != nil {
		return
	}
	for _, child := range children {
		m.appendRows(child, depth+1)
	}
}

// refresh re-renders the viewport content and keeps the cursor in view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}

	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		lines = append(lines, m.renderRow(r, i == m.cursor))
	}
	m.vp.SetContent(strings.Join(lines, "\n"))

	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *Model) renderRow(r row, selected bool) string {
	line, err := m.styles.FormatNode(m.tree, r.handle)
	if err != nil {
		line = m.styles.Dim.Render("(stale)")
	}

	marker := "  "
	if container, err := m.tree.IsContainer(r.handle); err == nil && container {
		if m.collapsed[r.handle] {
			marker = "+ "
		} else {
			marker = "- "
		}
	}

	prefix := strings.Repeat("  ", r.depth)
	if selected {
		return m.styles.Bold.Render("> ") + prefix + marker + line
	}
	return "  " + prefix + marker + line
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	if len(m.rows) == 0 {
		b.WriteString(m.styles.Success.Render("No violations to show") + "\n")
	} else {
		b.WriteString(m.vp.View())
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *Model) statusLine() string {
	left := fmt.Sprintf("%d findings", m.tree.Len())
	if m.status != "" {
		left += "  " + m.styles.Dim.Render(m.status)
	}
	help := m.styles.Dim.Render("j/k move  enter fold  x exclude  d/D delete  e/w/i/a filter  q quit")
	return left + "\n" + help
}

// Run starts the browser in the alternate screen and blocks until the user
// quits. The tree's listener is restored to a no-op on exit.
func Run(t *tree.Model, p violation.Provider, styles *pretty.Styles) error {
	m := New(t, p, styles)
	defer t.SetListener(nil)

	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running violation browser: %w", err)
	}
	return nil
}
