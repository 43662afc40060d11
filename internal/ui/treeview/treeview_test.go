package treeview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rcview/internal/ui/pretty"
	"github.com/yaklabco/rcview/pkg/board"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/tree"
	"github.com/yaklabco/rcview/pkg/units"
	"github.com/yaklabco/rcview/pkg/violation"
)

func newBrowser(t *testing.T) (*Model, *violation.MarkerProvider) {
	t.Helper()

	marker := board.NewMarker(units.Point{})
	first := violation.NewRecord(2, severity.Error)
	first.SetMessage("clearance")
	first.SetMarker(marker)

	second := violation.NewRecord(2, severity.Error)
	second.SetMessage("clearance")
	second.SetMarker(marker)

	third := violation.NewRecord(9, severity.Warning)
	third.SetMessage("dangling via")

	store := board.NewMarkerStore()
	provider := violation.NewMarkerProvider(store)
	provider.Add(first)
	provider.Add(second)
	provider.Add(third)

	tm := tree.New(tree.Options{Units: units.Options{Unit: units.Millimeters}})
	tm.SetProvider(provider)

	return New(tm, provider, pretty.NewStyles(false)), provider
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowser_FlattensTree(t *testing.T) {
	m, _ := newBrowser(t)

	// group + 2 primaries + 1 ungrouped primary
	require.Len(t, m.rows, 4)
	assert.Equal(t, 0, m.rows[0].depth)
	assert.Equal(t, 1, m.rows[1].depth)
	assert.Equal(t, 1, m.rows[2].depth)
	assert.Equal(t, 0, m.rows[3].depth)
}

func TestBrowser_CollapseGroup(t *testing.T) {
	m, _ := newBrowser(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(key(" ")) // collapse group under cursor
	assert.Len(t, m.rows, 2)

	m.Update(key(" ")) // expand again
	assert.Len(t, m.rows, 4)
}

func TestBrowser_DeletePrimary(t *testing.T) {
	m, provider := newBrowser(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(key("j")) // first primary in the group
	m.Update(key("d"))

	assert.Equal(t, 2, m.tree.Len())
	assert.Equal(t, 2, provider.Count(severity.All))
	assert.Len(t, m.rows, 3)
}

func TestBrowser_DeleteWholeGroupRemovesRows(t *testing.T) {
	m, _ := newBrowser(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(key("d")) // cursor on the group

	assert.Equal(t, 1, m.tree.Len())
	assert.Len(t, m.rows, 1)
	assert.Equal(t, 0, m.cursor)
}

func TestBrowser_ToggleExclusion(t *testing.T) {
	m, _ := newBrowser(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(key("j"))
	m.Update(key("x"))

	h := m.rows[m.cursor].handle
	rec, err := m.tree.Record(h)
	require.NoError(t, err)
	assert.True(t, rec.Excluded())
	assert.Equal(t, "excluded", m.status)
}

func TestBrowser_SeverityFilterKeys(t *testing.T) {
	m, _ := newBrowser(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(key("e")) // errors only
	assert.Equal(t, severity.Mask(severity.Error), m.tree.SeverityFilter())
	assert.Len(t, m.rows, 3) // group + 2 primaries, warning hidden

	m.Update(key("a"))
	assert.Equal(t, severity.All, m.tree.SeverityFilter())
	assert.Len(t, m.rows, 4)
}

func TestBrowser_QuitKey(t *testing.T) {
	m, _ := newBrowser(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
