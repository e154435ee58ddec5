package models

// Column is a table column. Width is a display hint only; Name is what
// locates the aggregation column.
type Column struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

// Row holds one value per column of the owning table, in column order.
type Row struct {
	ID     string   `json:"id" yaml:"id"`
	Values []string `json:"values" yaml:"values"`
}

// Table is a titled grid, also called a section.
type Table struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Columns []Column `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Tab is a sheet holding one or more tables.
type Tab struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Tables []Table `json:"tables" yaml:"tables"`
}

// ColumnIndex returns the index of the first column with the given name,
// or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the row that shares no memory with r.
func (r Row) Clone() Row {
	values := make([]string, len(r.Values))
	copy(values, r.Values)
	return Row{ID: r.ID, Values: values}
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := Table{ID: t.ID, Title: t.Title}
	out.Columns = make([]Column, len(t.Columns))
	copy(out.Columns, t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

// Clone returns a deep copy of the tab.
func (t Tab) Clone() Tab {
	out := Tab{ID: t.ID, Name: t.Name}
	out.Tables = make([]Table, len(t.Tables))
	for i, tbl := range t.Tables {
		out.Tables[i] = tbl.Clone()
	}
	return out
}
