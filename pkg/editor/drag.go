package editor

// DragRef tracks the live position of a row being dragged. Every committed
// hover moves the row, so TableID and Index always describe where the row
// currently is.
type DragRef struct {
	RowID   string
	TableID string
	Index   int
	active  bool
}

// Active reports whether the drag still accepts hovers.
func (r *DragRef) Active() bool {
	return r != nil && r.active
}

// BeginDrag starts dragging the row at index of tableID. It returns nil
// when no such row exists in the active tab.
func (e *Editor) BeginDrag(tableID string, index int) *DragRef {
	t, ok := e.doc.FindTable(tableID)
	if !ok || index < 0 || index >= len(t.Rows) {
		return nil
	}
	if _, _, inActive := e.doc.LocateRow(t.Rows[index].ID); !inActive {
		return nil
	}
	e.logger.Debug("drag started", "table", tableID, "row", index)
	return &DragRef{
		RowID:   t.Rows[index].ID,
		TableID: tableID,
		Index:   index,
		active:  true,
	}
}

// OnHoverRow moves the dragged row to targetIndex of targetTableID when
// that differs from its current position, and keeps ref in step with the
// committed move. It reports whether a move was committed. A ref whose row
// is no longer in the active tab is deactivated.
func (e *Editor) OnHoverRow(ref *DragRef, targetIndex int, targetTableID string) bool {
	if !ref.Active() {
		return false
	}
	// Other commands may have shifted or removed the row since the last hover.
	tableID, index, ok := e.doc.LocateRow(ref.RowID)
	if !ok {
		ref.active = false
		e.logger.Debug("drag lost its row", "row", ref.RowID)
		return false
	}
	ref.TableID, ref.Index = tableID, index
	if ref.TableID == targetTableID && ref.Index == targetIndex {
		return false
	}
	next, moved := e.doc.MoveRow(ref.TableID, targetTableID, ref.Index, targetIndex)
	if !moved {
		e.logger.Debug("hover ignored", "row", ref.RowID, "table", targetTableID, "index", targetIndex)
		return false
	}
	e.doc = next
	// The engine clamps the index, so read the landing position back.
	if tableID, index, ok := e.doc.LocateRow(ref.RowID); ok {
		ref.TableID, ref.Index = tableID, index
	}
	e.logger.Debug("row moved", "row", ref.RowID, "table", ref.TableID, "index", ref.Index)
	return true
}

// EndDrag drops the row where it is.
func (e *Editor) EndDrag(ref *DragRef) {
	if !ref.Active() {
		return
	}
	ref.active = false
	e.logger.Debug("drag ended", "row", ref.RowID, "table", ref.TableID, "index", ref.Index)
}

// CancelDrag stops tracking. Moves already committed by hovers stay.
func (e *Editor) CancelDrag(ref *DragRef) {
	if !ref.Active() {
		return
	}
	ref.active = false
	e.logger.Debug("drag cancelled", "row", ref.RowID)
}
