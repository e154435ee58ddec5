package sheet

import (
	"fmt"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

// EditCell replaces the value at (rowIndex, colIndex) of a table in the
// active tab. A table outside the active tab is left alone without error.
func (d Document) EditCell(tableID string, rowIndex, colIndex int, value string) (Document, error) {
	i := d.activeTableIndex(tableID)
	if i < 0 {
		return d, nil
	}
	return d.updateActiveTable(i, func(t models.Table) (models.Table, error) {
		if rowIndex < 0 || rowIndex >= len(t.Rows) {
			return t, indexError("edit cell row", rowIndex, len(t.Rows))
		}
		if colIndex < 0 || colIndex >= len(t.Columns) {
			return t, indexError("edit cell column", colIndex, len(t.Columns))
		}
		rows := make([]models.Row, len(t.Rows))
		copy(rows, t.Rows)
		row := rows[rowIndex].Clone()
		row.Values[colIndex] = value
		rows[rowIndex] = row
		t.Rows = rows
		return t, nil
	})
}

// AddRow appends a blank row sized to the table's columns.
func (d Document) AddRow(tableID string) (Document, error) {
	i := d.activeTableIndex(tableID)
	if i < 0 {
		return d, nil
	}
	d.ids = d.generator()
	return d.updateActiveTable(i, func(t models.Table) (models.Table, error) {
		rows := make([]models.Row, len(t.Rows), len(t.Rows)+1)
		copy(rows, t.Rows)
		t.Rows = append(rows, blankRow(d.ids, len(t.Columns)))
		return t, nil
	})
}

// RemoveRow deletes the row at rowIndex. The ids of the remaining rows do
// not change.
func (d Document) RemoveRow(tableID string, rowIndex int) (Document, error) {
	i := d.activeTableIndex(tableID)
	if i < 0 {
		return d, nil
	}
	return d.updateActiveTable(i, func(t models.Table) (models.Table, error) {
		if rowIndex < 0 || rowIndex >= len(t.Rows) {
			return t, indexError("remove row", rowIndex, len(t.Rows))
		}
		rows := make([]models.Row, 0, len(t.Rows)-1)
		rows = append(rows, t.Rows[:rowIndex]...)
		t.Rows = append(rows, t.Rows[rowIndex+1:]...)
		return t, nil
	})
}

// AddColumn appends a column and backfills an empty value into every
// existing row. An empty name becomes "Column <n>".
func (d Document) AddColumn(tableID, name string) (Document, error) {
	i := d.activeTableIndex(tableID)
	if i < 0 {
		return d, nil
	}
	return d.updateActiveTable(i, func(t models.Table) (models.Table, error) {
		n := len(t.Columns) + 1
		if name == "" {
			name = fmt.Sprintf("Column %d", n)
		}
		columns := make([]models.Column, len(t.Columns), n)
		copy(columns, t.Columns)
		t.Columns = append(columns, models.Column{
			ID:    fmt.Sprintf("%s-%d", columnPrefix(t), n),
			Name:  name,
			Width: defaultColumnWidth,
		})
		rows := make([]models.Row, len(t.Rows))
		for j, r := range t.Rows {
			values := make([]string, len(r.Values), len(r.Values)+1)
			copy(values, r.Values)
			rows[j] = models.Row{ID: r.ID, Values: append(values, "")}
		}
		t.Rows = rows
		return t, nil
	})
}

// columnPrefix is "col-<table counter>" for tables built by NewTable.
func columnPrefix(t models.Table) string {
	var n int
	if _, err := fmt.Sscanf(t.ID, "table-%d", &n); err == nil {
		return fmt.Sprintf("col-%d", n)
	}
	return "col-" + t.ID
}

// RenameTableTitle sets the title verbatim, empty included.
func (d Document) RenameTableTitle(tableID, title string) (Document, error) {
	i := d.activeTableIndex(tableID)
	if i < 0 {
		return d, nil
	}
	return d.updateActiveTable(i, func(t models.Table) (models.Table, error) {
		t.Title = title
		return t, nil
	})
}

// RenameTabName sets the name of the tab at tabIndex verbatim.
func (d Document) RenameTabName(tabIndex int, name string) (Document, error) {
	if tabIndex < 0 || tabIndex >= len(d.tabs) {
		return d, indexError("rename tab", tabIndex, len(d.tabs))
	}
	tabs := make([]models.Tab, len(d.tabs))
	copy(tabs, d.tabs)
	tabs[tabIndex].Name = name
	d.tabs = tabs
	return d, nil
}

// AddTable appends a default table to the tab with id tabID.
func (d Document) AddTable(tabID string) (Document, error) {
	i := d.tabIndex(tabID)
	if i < 0 {
		return d, nil
	}
	d.ids = d.generator()
	tabs := make([]models.Tab, len(d.tabs))
	copy(tabs, d.tabs)
	tables := make([]models.Table, len(tabs[i].Tables), len(tabs[i].Tables)+1)
	copy(tables, tabs[i].Tables)
	tabs[i].Tables = append(tables, NewTable(d.ids))
	d.tabs = tabs
	return d, nil
}

// AddTab appends a tab with one default table and makes it active.
func (d Document) AddTab() Document {
	d.ids = d.generator()
	tabs := make([]models.Tab, len(d.tabs), len(d.tabs)+1)
	copy(tabs, d.tabs)
	d.tabs = append(tabs, NewTab(d.ids))
	d.active = len(d.tabs) - 1
	return d
}

// SwitchTab makes the tab at index active.
func (d Document) SwitchTab(index int) (Document, error) {
	if index < 0 || index >= len(d.tabs) {
		return d, indexError("switch tab", index, len(d.tabs))
	}
	d.active = index
	return d, nil
}
