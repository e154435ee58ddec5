package sheet

import "github.com/pluqqy/pluqqy-ledger/pkg/models"

// MoveRow relocates the row at fromIndex of fromTableID to toIndex of
// toTableID, both in the active tab. The row is removed first and toIndex
// is then clamped to the destination's length, so within one table a move
// from 0 to 2 of [A B C D] gives [B C A D].
//
// moved is false, and the document unchanged, when either table is not in
// the active tab or fromIndex addresses no row.
func (d Document) MoveRow(fromTableID, toTableID string, fromIndex, toIndex int) (out Document, moved bool) {
	src := d.activeTableIndex(fromTableID)
	dst := d.activeTableIndex(toTableID)
	if src < 0 || dst < 0 {
		return d, false
	}
	current := d.tabs[d.active].Tables
	if fromIndex < 0 || fromIndex >= len(current[src].Rows) {
		return d, false
	}

	tables := make([]models.Table, len(current))
	copy(tables, current)

	source := tables[src]
	row := source.Rows[fromIndex]
	remaining := make([]models.Row, 0, len(source.Rows)-1)
	remaining = append(remaining, source.Rows[:fromIndex]...)
	source.Rows = append(remaining, source.Rows[fromIndex+1:]...)
	tables[src] = source

	dest := tables[dst]
	toIndex = max(0, min(toIndex, len(dest.Rows)))
	rows := make([]models.Row, 0, len(dest.Rows)+1)
	rows = append(rows, dest.Rows[:toIndex]...)
	rows = append(rows, row)
	dest.Rows = append(rows, dest.Rows[toIndex:]...)
	tables[dst] = dest

	return d.withActiveTables(tables), true
}
