package sheet

import (
	"fmt"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

// ValueColumn is the name of the column summed into table totals.
const ValueColumn = "Value"

// Column defaults for every new table: name and display width.
var defaultColumns = []struct {
	name  string
	width int
}{
	{"Asset", 200},
	{"IRR", 100},
	{ValueColumn, 100},
}

const (
	defaultRows        = 2
	defaultColumnWidth = 100
)

// NewTable builds a default table: Asset, IRR and Value columns and two
// blank rows. The title and column ids derive from the table counter, the
// row ids from the shared row counter.
func NewTable(ids *IDGenerator) models.Table {
	n := ids.NextTable()
	t := models.Table{
		ID:      tableID(n),
		Title:   fmt.Sprintf("Section %d", n),
		Columns: make([]models.Column, len(defaultColumns)),
		Rows:    make([]models.Row, 0, defaultRows),
	}
	for i, c := range defaultColumns {
		t.Columns[i] = models.Column{ID: columnID(n, i+1), Name: c.name, Width: c.width}
	}
	for i := 0; i < defaultRows; i++ {
		t.Rows = append(t.Rows, blankRow(ids, len(t.Columns)))
	}
	return t
}

// NewTab builds a tab holding exactly one default table.
func NewTab(ids *IDGenerator) models.Tab {
	n := ids.NextTab()
	return models.Tab{
		ID:     tabID(n),
		Name:   fmt.Sprintf("#Sheet %d", n),
		Tables: []models.Table{NewTable(ids)},
	}
}

func blankRow(ids *IDGenerator, columns int) models.Row {
	return models.Row{
		ID:     rowID(ids.NextRow()),
		Values: make([]string, columns),
	}
}
