package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/pluqqy/pluqqy-ledger/pkg/editor"
	"github.com/pluqqy/pluqqy-ledger/pkg/models"
	"github.com/pluqqy/pluqqy-ledger/pkg/sheet"
)

func statusCmd(format string, args ...interface{}) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsg(msg)
	}
}

func errorCmd(err error) tea.Cmd {
	return statusCmd("Error: %v", err)
}

func (m *SheetModel) Init() tea.Cmd {
	return nil
}

func (m *SheetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}
		switch m.mode {
		case modeEdit:
			return m, m.updateEdit(msg)
		case modeDrag:
			return m, m.updateDrag(msg)
		default:
			return m, m.updateNormal(msg)
		}
	}

	// Cursor blinks and mouse wheel scrolling
	var cmd tea.Cmd
	if m.mode == modeEdit {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *SheetModel) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Up):
		m.moveCursorRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursorRow(1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.col--
		m.clampCursor()
	case key.Matches(msg, m.keys.Right):
		m.cursor.col++
		m.clampCursor()
	case key.Matches(msg, m.keys.Edit):
		return m.startCellEdit()
	case key.Matches(msg, m.keys.EditTitle):
		return m.startTitleEdit()
	case key.Matches(msg, m.keys.RenameTab):
		return m.startTabRename()
	case key.Matches(msg, m.keys.AddRow):
		return m.addRow()
	case key.Matches(msg, m.keys.RemoveRow):
		return m.confirmRemoveRow()
	case key.Matches(msg, m.keys.AddColumn):
		return m.addColumn()
	case key.Matches(msg, m.keys.AddTable):
		return m.addTable()
	case key.Matches(msg, m.keys.AddTab):
		m.editor.AddTab()
		m.cursor = cursor{}
	case key.Matches(msg, m.keys.PrevTab):
		return m.selectTab(m.editor.Document().ActiveIndex() - 1)
	case key.Matches(msg, m.keys.NextTab):
		return m.selectTab(m.editor.Document().ActiveIndex() + 1)
	case key.Matches(msg, m.keys.Grab):
		return m.beginDrag()
	case key.Matches(msg, m.keys.Yank):
		return m.yankCell()
	case key.Matches(msg, m.keys.YankTotal):
		return m.yankTotal()
	default:
		// 1-9 jump to a sheet
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= 9 {
			if n > m.editor.Document().Len() {
				return statusCmd("No sheet %d", n)
			}
			return m.selectTab(n - 1)
		}
	}
	return nil
}

// moveCursorRow moves one row up or down, continuing into the previous or
// next table at the edges.
func (m *SheetModel) moveCursorRow(delta int) {
	tab := m.activeTab()
	if len(tab.Tables) == 0 {
		return
	}
	rows := len(tab.Tables[m.cursor.table].Rows)
	next := m.cursor.row + delta
	switch {
	case next >= 0 && next < rows:
		m.cursor.row = next
	case delta > 0 && m.cursor.table < len(tab.Tables)-1:
		m.cursor.table++
		m.cursor.row = 0
	case delta < 0 && m.cursor.table > 0:
		m.cursor.table--
		m.cursor.row = len(tab.Tables[m.cursor.table].Rows) - 1
	}
	m.clampCursor()
}

func (m *SheetModel) selectTab(index int) tea.Cmd {
	if index < 0 || index >= m.editor.Document().Len() {
		return nil
	}
	if err := m.editor.OnSelectTab(index); err != nil {
		return errorCmd(err)
	}
	m.cursor = cursor{}
	return nil
}

// --- Inline editing ---

func (m *SheetModel) startEdit(field editor.Field, value string, width int) tea.Cmd {
	m.mode = modeEdit
	m.field = field
	m.input.Reset()
	m.input.Width = max(1, width-1)
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *SheetModel) startCellEdit() tea.Cmd {
	t, ok := m.currentTable()
	if !ok {
		return nil
	}
	if len(t.Rows) == 0 {
		return statusCmd("%s has no rows", sectionName(t))
	}
	c := m.cursor
	field := editor.Field{Kind: editor.CellField, TableID: t.ID, Row: c.row, Col: c.col}
	return m.startEdit(field, t.Rows[c.row].Values[c.col], cellWidth(t.Columns[c.col].Width, m.display.CellWidthScale))
}

func (m *SheetModel) startTitleEdit() tea.Cmd {
	t, ok := m.currentTable()
	if !ok {
		return nil
	}
	return m.startEdit(editor.Field{Kind: editor.TableTitleField, TableID: t.ID}, t.Title, m.tableWidth(t))
}

func (m *SheetModel) startTabRename() tea.Cmd {
	doc := m.editor.Document()
	field := editor.Field{Kind: editor.TabNameField, TabIndex: doc.ActiveIndex()}
	return m.startEdit(field, m.activeTab().Name, 24)
}

func (m *SheetModel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.editKeys.Discard):
		m.endEdit()
		return nil
	case key.Matches(msg, m.editKeys.Commit):
		return m.commitEdit()
	case key.Matches(msg, m.editKeys.Next):
		cmd := m.commitEdit()
		m.cursor.col++
		m.clampCursor()
		return cmd
	case key.Matches(msg, m.editKeys.Prev):
		cmd := m.commitEdit()
		m.cursor.col--
		m.clampCursor()
		return cmd
	case key.Matches(msg, m.editKeys.Up):
		cmd := m.commitEdit()
		m.moveCursorRow(-1)
		return cmd
	case key.Matches(msg, m.editKeys.Down):
		cmd := m.commitEdit()
		m.moveCursorRow(1)
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// commitEdit hands the field's text to the editor as the field loses focus.
func (m *SheetModel) commitEdit() tea.Cmd {
	value := m.input.Value()
	field := m.field
	m.endEdit()
	if err := m.editor.OnBlurEditableField(field, value); err != nil {
		return errorCmd(err)
	}
	return nil
}

func (m *SheetModel) endEdit() {
	m.mode = modeNormal
	m.input.Blur()
	m.field = editor.Field{}
}

// --- Structure ---

func (m *SheetModel) addRow() tea.Cmd {
	t, ok := m.currentTable()
	if !ok {
		return nil
	}
	if err := m.editor.AddRow(t.ID); err != nil {
		return errorCmd(err)
	}
	m.cursor.row = len(t.Rows)
	m.clampCursor()
	return nil
}

func (m *SheetModel) confirmRemoveRow() tea.Cmd {
	t, ok := m.currentTable()
	if !ok || len(t.Rows) == 0 {
		return statusCmd("No row to delete")
	}
	tableID, row := t.ID, m.cursor.row
	m.confirm.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Delete row %d of %s?", row+1, sectionName(t)),
		Destructive: true,
	}, func() tea.Cmd {
		if err := m.editor.RemoveRow(tableID, row); err != nil {
			return errorCmd(err)
		}
		m.clampCursor()
		return statusCmd("Deleted row %d", row+1)
	}, nil)
	return nil
}

func (m *SheetModel) addColumn() tea.Cmd {
	t, ok := m.currentTable()
	if !ok {
		return nil
	}
	if err := m.editor.AddColumn(t.ID, ""); err != nil {
		return errorCmd(err)
	}
	m.cursor.col = len(t.Columns)
	m.clampCursor()
	return nil
}

func (m *SheetModel) addTable() tea.Cmd {
	tab := m.activeTab()
	if err := m.editor.AddTable(tab.ID); err != nil {
		return errorCmd(err)
	}
	m.cursor = cursor{table: len(tab.Tables)}
	m.clampCursor()
	return nil
}

// --- Moving rows ---

func (m *SheetModel) beginDrag() tea.Cmd {
	t, ok := m.currentTable()
	if !ok || len(t.Rows) == 0 {
		return statusCmd("No row to move")
	}
	ref := m.editor.BeginDrag(t.ID, m.cursor.row)
	if ref == nil {
		return nil
	}
	m.drag = ref
	m.mode = modeDrag
	return statusCmd("Moving row %d: j/k to move, enter to drop", m.cursor.row+1)
}

func (m *SheetModel) updateDrag(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.dragKeys.Up):
		return m.hover(-1)
	case key.Matches(msg, m.dragKeys.Down):
		return m.hover(1)
	case key.Matches(msg, m.dragKeys.Drop):
		m.editor.EndDrag(m.drag)
		m.endDrag()
		return statusCmd("Row dropped")
	case key.Matches(msg, m.dragKeys.Cancel):
		m.editor.CancelDrag(m.drag)
		m.endDrag()
		return statusCmd("Move stopped")
	}
	return nil
}

// hover targets the next row position above or below the dragged row.
// Past the last row of a table the row enters the top of the next one,
// above the first it joins the bottom of the previous one.
func (m *SheetModel) hover(delta int) tea.Cmd {
	tab := m.activeTab()
	ti := tableIndex(tab, m.drag.TableID)
	if ti < 0 {
		return nil
	}
	t := tab.Tables[ti]
	var (
		target string
		index  int
	)
	switch {
	case delta > 0 && m.drag.Index < len(t.Rows)-1:
		target, index = t.ID, m.drag.Index+1
	case delta > 0 && ti < len(tab.Tables)-1:
		target, index = tab.Tables[ti+1].ID, 0
	case delta < 0 && m.drag.Index > 0:
		target, index = t.ID, m.drag.Index-1
	case delta < 0 && ti > 0:
		target, index = tab.Tables[ti-1].ID, len(tab.Tables[ti-1].Rows)
	default:
		return nil
	}
	if m.editor.OnHoverRow(m.drag, index, target) {
		m.cursor.table = tableIndex(tab, m.drag.TableID)
		m.cursor.row = m.drag.Index
		return nil
	}
	if !m.drag.Active() {
		m.endDrag()
		return statusCmd("Row is gone, move stopped")
	}
	return nil
}

func (m *SheetModel) endDrag() {
	m.drag = nil
	m.mode = modeNormal
	m.clampCursor()
}

func tableIndex(tab models.Tab, tableID string) int {
	for i, t := range tab.Tables {
		if t.ID == tableID {
			return i
		}
	}
	return -1
}

// --- Clipboard ---

func (m *SheetModel) yankCell() tea.Cmd {
	t, ok := m.currentTable()
	if !ok || len(t.Rows) == 0 {
		return nil
	}
	value := t.Rows[m.cursor.row].Values[m.cursor.col]
	if err := m.writeClipboard(value); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return statusCmd("Copy failed: %v", err)
	}
	label := value
	if label == "" {
		label = "Empty cell"
	}
	return statusCmd("%s → clipboard", label)
}

func (m *SheetModel) yankTotal() tea.Cmd {
	total := m.formatAmount(m.editor.GrandTotal())
	if err := m.writeClipboard(total); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return statusCmd("Copy failed: %v", err)
	}
	return statusCmd("Total %s → clipboard", total)
}

func (m *SheetModel) formatAmount(d decimal.Decimal) string {
	return sheet.FormatAmount(d, m.display.Currency, m.display.GroupDigits)
}

func sectionName(t models.Table) string {
	if t.Title == "" {
		return "untitled section"
	}
	return t.Title
}
