package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-ledger/pkg/editor"
	"github.com/pluqqy/pluqqy-ledger/pkg/models"
	"github.com/pluqqy/pluqqy-ledger/pkg/sheet"
)

const (
	columnSeparator = " │ "
	// statusLines is reserved below the sheet for the app status bar
	statusLines = 1
)

func (m *SheetModel) View() string {
	header := renderHeader(m.width, "ledger", "Total "+m.formatAmount(m.editor.GrandTotal()))
	tabs := m.renderTabStrip()

	var footer string
	if m.confirm.Active() {
		footer = m.confirm.ViewWithWidth(m.width)
	} else {
		footer = m.renderHelp()
	}

	grid, cursorLine := m.renderTables()
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-lipgloss.Height(header)-lipgloss.Height(tabs)-lipgloss.Height(footer)-statusLines)
	m.viewport.SetContent(grid)
	m.scrollTo(cursorLine)

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, m.viewport.View(), footer)
}

// scrollTo keeps line inside the visible part of the viewport.
func (m *SheetModel) scrollTo(line int) {
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *SheetModel) renderHelp() string {
	m.help.ShowAll = m.showHelp
	var view string
	switch m.mode {
	case modeEdit:
		view = m.help.View(m.editKeys)
	case modeDrag:
		view = m.help.View(m.dragKeys)
	default:
		view = m.help.View(m.keys)
	}
	if m.showHelp {
		return HelpBorderStyle.Render(view)
	}
	return view
}

func (m *SheetModel) renderTabStrip() string {
	doc := m.editor.Document()
	labels := make([]string, 0, doc.Len())
	for i, tab := range doc.Tabs() {
		name := tab.Name
		active := i == doc.ActiveIndex()
		if active && m.editing(editor.TabNameField) {
			name = m.input.View()
		}
		label := fmt.Sprintf("%d %s", i+1, name)
		if active {
			labels = append(labels, ActiveTabStyle.Render(label))
		} else {
			labels = append(labels, InactiveTabStyle.Render(label))
		}
	}
	return " " + strings.Join(labels, " ")
}

// renderTables draws every table of the active tab and reports the line
// the cursor is on.
func (m *SheetModel) renderTables() (string, int) {
	var (
		lines      []string
		cursorLine int
	)
	for i, t := range m.activeTab().Tables {
		if i > 0 {
			lines = append(lines, "")
		}
		selected := i == m.cursor.table
		if selected {
			cursorLine = len(lines)
		}
		table, rowLine := m.renderTable(t, selected)
		if selected {
			cursorLine += rowLine
		}
		lines = append(lines, table...)
	}
	return strings.Join(lines, "\n"), cursorLine
}

// renderTable returns the lines of one table and, when it holds the
// cursor, the index of the cursor's line among them.
func (m *SheetModel) renderTable(t models.Table, selected bool) ([]string, int) {
	widths := m.columnWidths(t)
	tableWidth := m.tableWidth(t)

	title := t.Title
	if selected && m.editing(editor.TableTitleField) {
		title = m.input.View()
	} else if title == "" {
		title = EmptyTableStyle.Render("untitled section")
	}
	lines := []string{" " + GetActiveHeaderStyle(selected).Render(title)}

	headers := make([]string, len(t.Columns))
	rules := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = ColumnHeaderStyle.Render(fitCell(c.Name, widths[i]))
		rules[i] = strings.Repeat("─", widths[i])
	}
	lines = append(lines,
		" "+strings.Join(headers, columnSeparator),
		" "+SeparatorStyle.Render(strings.Join(rules, "─┼─")),
	)

	rowLine := len(lines)
	if len(t.Rows) == 0 {
		lines = append(lines, " "+EmptyTableStyle.Render(fitCell("no rows, press n to add one", tableWidth)))
	}
	for r, row := range t.Rows {
		lines = append(lines, " "+m.renderRow(t, r, row, widths, selected))
	}
	if selected && len(t.Rows) > 0 {
		rowLine += m.cursor.row
	}

	total := "Total " + m.formatAmount(sheet.ComputeTotal(t))
	footer := lipgloss.NewStyle().Width(tableWidth).Align(lipgloss.Right).Render(TotalStyle.Render(total))
	lines = append(lines, " "+SeparatorStyle.Render(strings.Join(rules, "─┴─")), " "+footer)

	return lines, rowLine
}

func (m *SheetModel) renderRow(t models.Table, r int, row models.Row, widths []int, selected bool) string {
	dragged := m.mode == modeDrag && m.drag != nil && m.drag.RowID == row.ID
	cells := make([]string, len(widths))
	for c := range widths {
		var value string
		if c < len(row.Values) {
			value = row.Values[c]
		}
		onCursor := selected && r == m.cursor.row && c == m.cursor.col
		switch {
		case onCursor && m.editing(editor.CellField):
			cells[c] = padVisible(m.input.View(), widths[c])
		case onCursor && !dragged:
			cells[c] = CursorStyle.Render(fitCell(value, widths[c]))
		default:
			cells[c] = fitCell(value, widths[c])
		}
	}
	line := strings.Join(cells, columnSeparator)
	if dragged {
		return DraggedRowStyle.Render(line)
	}
	return NormalStyle.Render(line)
}

func (m *SheetModel) columnWidths(t models.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = cellWidth(c.Width, m.display.CellWidthScale)
	}
	return widths
}

// tableWidth is the width of a rendered row of t.
func (m *SheetModel) tableWidth(t models.Table) int {
	width := 0
	for i, w := range m.columnWidths(t) {
		if i > 0 {
			width += lipgloss.Width(columnSeparator)
		}
		width += w
	}
	return width
}

func (m *SheetModel) editing(kind editor.FieldKind) bool {
	return m.mode == modeEdit && m.field.Kind == kind
}

// padVisible pads s, which may hold escape sequences, to width cells.
func padVisible(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
