package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rcview/internal/ui/pretty"
	"github.com/yaklabco/rcview/pkg/board"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/tree"
	"github.com/yaklabco/rcview/pkg/units"
	"github.com/yaklabco/rcview/pkg/violation"
)

func newRecord(code int, msg string, sev severity.Severity) *violation.Record {
	rec := violation.NewRecord(code, sev)
	rec.SetMessage(msg)
	return rec
}

func newTestModel(t *testing.T, records ...*violation.Record) *tree.Model {
	t.Helper()
	m := tree.New(tree.Options{Units: units.Options{Unit: units.Millimeters}})
	m.SetProvider(violation.NewListProvider(records...))
	return m
}

func TestRenderTree_Empty(t *testing.T) {
	styles := pretty.NewStyles(false)
	m := newTestModel(t)

	out, err := styles.RenderTree(m, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderTree_FlatRecords(t *testing.T) {
	styles := pretty.NewStyles(false)
	m := newTestModel(t,
		newRecord(2, "clearance violation", severity.Error),
		newRecord(7, "silkscreen overlap", severity.Warning),
	)

	out, err := styles.RenderTree(m, 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "error")
	assert.Contains(t, lines[0], "clearance violation")
	assert.Contains(t, lines[0], "(2)")
	assert.Contains(t, lines[1], "warning")
	assert.Contains(t, lines[1], "silkscreen overlap")
}

func TestRenderTree_GroupAndSecondary(t *testing.T) {
	styles := pretty.NewStyles(false)

	marker := board.NewMarker(units.Point{})
	first := newRecord(2, "clearance", severity.Error)
	first.SetMarker(marker)
	second := newRecord(2, "clearance", severity.Error)
	second.SetMarker(marker)

	store := board.NewMarkerStore()
	provider := violation.NewMarkerProvider(store)
	provider.Add(first)
	provider.Add(second)

	m := tree.New(tree.Options{Units: units.Options{Unit: units.Millimeters}})
	m.SetProvider(provider)

	out, err := styles.RenderTree(m, 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "clearance (2)")
	// Children are indented under the group branch
	assert.True(t, strings.HasPrefix(lines[1], "   "), "child line should be indented: %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "   "), "child line should be indented: %q", lines[2])
}

func TestFormatNode_StaleHandle(t *testing.T) {
	styles := pretty.NewStyles(false)
	m := newTestModel(t, newRecord(1, "dangling via", severity.Warning))

	top, err := m.Children(tree.Root)
	require.NoError(t, err)
	require.Len(t, top, 1)

	m.SetSeverityFilter(severity.Mask(severity.Error))

	_, err = styles.FormatNode(m, top[0])
	assert.ErrorIs(t, err, tree.ErrInvalidHandle)
}
