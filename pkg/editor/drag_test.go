package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dragEditor has table-1 with row-1, row-2 and row-3 and table-2 with
// row-4 and row-5.
func dragEditor(t *testing.T) *Editor {
	t.Helper()
	e := newSampleEditor(t)
	require.NoError(t, e.AddRow("table-1"))
	require.NoError(t, e.AddTable("tab-1"))
	return e
}

func rowOrder(t *testing.T, e *Editor) [][]string {
	t.Helper()
	tab := activeTab(t, e)
	out := make([][]string, len(tab.Tables))
	for i, table := range tab.Tables {
		out[i] = make([]string, len(table.Rows))
		for j, r := range table.Rows {
			out[i][j] = r.ID
		}
	}
	return out
}

func TestBeginDrag(t *testing.T) {
	e := dragEditor(t)

	ref := e.BeginDrag("table-1", 0)
	require.NotNil(t, ref)
	assert.True(t, ref.Active())
	assert.Equal(t, DragRef{RowID: "row-1", TableID: "table-1", Index: 0, active: true}, *ref)

	assert.Nil(t, e.BeginDrag("table-1", 3))
	assert.Nil(t, e.BeginDrag("table-1", -1))
	assert.Nil(t, e.BeginDrag("table-7", 0))

	e.AddTab()
	assert.Nil(t, e.BeginDrag("table-1", 0), "rows of an inactive tab cannot be grabbed")
}

func TestOnHoverRow_TracksCommittedMoves(t *testing.T) {
	e := dragEditor(t)
	ref := e.BeginDrag("table-1", 0)
	require.NotNil(t, ref)

	assert.True(t, e.OnHoverRow(ref, 1, "table-1"))
	assert.Equal(t, [][]string{{"row-2", "row-1", "row-3"}, {"row-4", "row-5"}}, rowOrder(t, e))
	assert.Equal(t, "table-1", ref.TableID)
	assert.Equal(t, 1, ref.Index)

	assert.False(t, e.OnHoverRow(ref, 1, "table-1"), "hovering the tracked position is a no-op")

	assert.True(t, e.OnHoverRow(ref, 0, "table-2"))
	assert.Equal(t, [][]string{{"row-2", "row-3"}, {"row-1", "row-4", "row-5"}}, rowOrder(t, e))
	assert.Equal(t, "table-2", ref.TableID)
	assert.Equal(t, 0, ref.Index)

	assert.True(t, e.OnHoverRow(ref, 99, "table-1"))
	assert.Equal(t, [][]string{{"row-2", "row-3", "row-1"}, {"row-4", "row-5"}}, rowOrder(t, e))
	assert.Equal(t, "table-1", ref.TableID)
	assert.Equal(t, 2, ref.Index, "the ref follows the clamped position")

	assert.Equal(t, "23741.00", e.GrandTotal().StringFixed(2))
}

func TestOnHoverRow_FollowsRowAfterOtherEdits(t *testing.T) {
	e := dragEditor(t)
	ref := e.BeginDrag("table-1", 1)
	require.NotNil(t, ref)
	require.Equal(t, "row-2", ref.RowID)

	require.NoError(t, e.RemoveRow("table-1", 0))
	require.Equal(t, [][]string{{"row-2", "row-3"}, {"row-4", "row-5"}}, rowOrder(t, e))

	assert.False(t, e.OnHoverRow(ref, 0, "table-1"), "the row already sits at the target")
	assert.Equal(t, [][]string{{"row-2", "row-3"}, {"row-4", "row-5"}}, rowOrder(t, e))
	assert.Equal(t, 0, ref.Index)

	assert.True(t, e.OnHoverRow(ref, 1, "table-1"))
	assert.Equal(t, [][]string{{"row-3", "row-2"}, {"row-4", "row-5"}}, rowOrder(t, e))
	assert.Equal(t, 1, ref.Index)
}

func TestOnHoverRow_RowRemovedDuringDrag(t *testing.T) {
	e := dragEditor(t)
	ref := e.BeginDrag("table-1", 1)
	require.NotNil(t, ref)

	require.NoError(t, e.RemoveRow("table-1", 1))
	before := rowOrder(t, e)

	assert.False(t, e.OnHoverRow(ref, 0, "table-2"))
	assert.Equal(t, before, rowOrder(t, e), "no other row is moved in its place")
	assert.False(t, ref.Active())
}

func TestOnHoverRow_UnknownTarget(t *testing.T) {
	e := dragEditor(t)
	ref := e.BeginDrag("table-1", 2)
	require.NotNil(t, ref)
	before := rowOrder(t, e)

	assert.False(t, e.OnHoverRow(ref, 0, "table-9"))
	assert.Equal(t, before, rowOrder(t, e))
	assert.Equal(t, "table-1", ref.TableID)
	assert.Equal(t, 2, ref.Index)
	assert.True(t, ref.Active())
}

func TestOnHoverRow_NilRef(t *testing.T) {
	e := dragEditor(t)
	before := rowOrder(t, e)

	assert.False(t, e.OnHoverRow(nil, 1, "table-1"))
	assert.Equal(t, before, rowOrder(t, e))
}

func TestEndDrag(t *testing.T) {
	e := dragEditor(t)
	ref := e.BeginDrag("table-2", 1)
	require.NotNil(t, ref)
	require.True(t, e.OnHoverRow(ref, 0, "table-2"))

	e.EndDrag(ref)
	assert.False(t, ref.Active())
	assert.False(t, e.OnHoverRow(ref, 1, "table-2"))
	assert.Equal(t, [][]string{{"row-1", "row-2", "row-3"}, {"row-5", "row-4"}}, rowOrder(t, e))

	// Ending twice, or a nil ref, is harmless.
	e.EndDrag(ref)
	e.EndDrag(nil)
}

func TestCancelDrag_KeepsCommittedMoves(t *testing.T) {
	e := dragEditor(t)
	ref := e.BeginDrag("table-1", 0)
	require.NotNil(t, ref)
	require.True(t, e.OnHoverRow(ref, 1, "table-2"))
	moved := rowOrder(t, e)

	e.CancelDrag(ref)

	assert.False(t, ref.Active())
	assert.Equal(t, moved, rowOrder(t, e))
	assert.Equal(t, [][]string{{"row-2", "row-3"}, {"row-4", "row-1", "row-5"}}, moved)
	assert.False(t, e.OnHoverRow(ref, 0, "table-1"))
	e.CancelDrag(nil)
}
