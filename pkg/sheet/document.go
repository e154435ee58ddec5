// Package sheet implements the ledger document: an immutable tree of tabs,
// tables and rows, the operations that derive new snapshots from it, and
// the aggregation of the "Value" column.
//
// A Document is a value. Every operation returns a new Document and leaves
// its receiver untouched; slices are copied along the edited path only, so
// unchanged tables are shared between snapshots but never written through.
package sheet

import "github.com/pluqqy/pluqqy-ledger/pkg/models"

// Document is one snapshot of the whole ledger.
type Document struct {
	tabs   []models.Tab
	active int
	ids    *IDGenerator
}

// NewDocument returns the default document: one tab with one default
// table of two blank rows. A nil generator is replaced by a fresh one.
func NewDocument(ids *IDGenerator) Document {
	if ids == nil {
		ids = NewIDGenerator()
	}
	return Document{
		tabs: []models.Tab{NewTab(ids)},
		ids:  ids,
	}
}

// SampleDocument returns the default document with its first table filled
// with two example holdings.
func SampleDocument(ids *IDGenerator) Document {
	doc := NewDocument(ids)
	table := &doc.tabs[0].Tables[0]
	table.Rows[0].Values = []string{"Fidelity - Plaid Checking - 0000", "Cost $238", "$110"}
	table.Rows[1].Values = []string{"Fidelity - Plaid 401k - 6666", "Cost $238", "$23,631"}
	return doc
}

// IDs returns the generator shared by this document's snapshots.
func (d Document) IDs() *IDGenerator {
	return d.ids
}

// Len returns the number of tabs.
func (d Document) Len() int {
	return len(d.tabs)
}

// ActiveIndex returns the index of the displayed tab.
func (d Document) ActiveIndex() int {
	return d.active
}

// Tabs returns a deep copy of every tab.
func (d Document) Tabs() []models.Tab {
	out := make([]models.Tab, len(d.tabs))
	for i, t := range d.tabs {
		out[i] = t.Clone()
	}
	return out
}

// Tab returns a copy of the tab at index.
func (d Document) Tab(index int) (models.Tab, error) {
	if index < 0 || index >= len(d.tabs) {
		return models.Tab{}, indexError("tab", index, len(d.tabs))
	}
	return d.tabs[index].Clone(), nil
}

// ActiveTab returns a copy of the displayed tab. ok is false for a
// document without tabs.
func (d Document) ActiveTab() (tab models.Tab, ok bool) {
	if len(d.tabs) == 0 {
		return models.Tab{}, false
	}
	return d.tabs[d.active].Clone(), true
}

// FindTable looks a table up by id in any tab.
func (d Document) FindTable(tableID string) (models.Table, bool) {
	for _, tab := range d.tabs {
		for _, t := range tab.Tables {
			if t.ID == tableID {
				return t.Clone(), true
			}
		}
	}
	return models.Table{}, false
}

// LocateRow reports which table of the active tab holds rowID and at which
// index.
func (d Document) LocateRow(rowID string) (tableID string, index int, ok bool) {
	if len(d.tabs) == 0 {
		return "", 0, false
	}
	for _, t := range d.tabs[d.active].Tables {
		for i, r := range t.Rows {
			if r.ID == rowID {
				return t.ID, i, true
			}
		}
	}
	return "", 0, false
}

// generator returns the document's id generator, creating one for a zero
// Document. Callers must store the result on the snapshot they return.
func (d Document) generator() *IDGenerator {
	if d.ids == nil {
		return NewIDGenerator()
	}
	return d.ids
}

// activeTableIndex finds tableID among the tables of the active tab.
// Mutations address tables through this, which restricts them to the
// displayed tab.
func (d Document) activeTableIndex(tableID string) int {
	if len(d.tabs) == 0 {
		return -1
	}
	for i, t := range d.tabs[d.active].Tables {
		if t.ID == tableID {
			return i
		}
	}
	return -1
}

func (d Document) tabIndex(tabID string) int {
	for i, t := range d.tabs {
		if t.ID == tabID {
			return i
		}
	}
	return -1
}

// withActiveTables returns a snapshot whose active tab has tables as its
// table list. The tab slice is copied; other tabs are shared.
func (d Document) withActiveTables(tables []models.Table) Document {
	tabs := make([]models.Tab, len(d.tabs))
	copy(tabs, d.tabs)
	tabs[d.active].Tables = tables
	d.tabs = tabs
	return d
}

// updateActiveTable replaces the table at index i of the active tab with
// the result of fn. fn receives a table whose slices it may not modify in
// place.
func (d Document) updateActiveTable(i int, fn func(models.Table) (models.Table, error)) (Document, error) {
	current := d.tabs[d.active].Tables
	updated, err := fn(current[i])
	if err != nil {
		return d, err
	}
	tables := make([]models.Table, len(current))
	copy(tables, current)
	tables[i] = updated
	return d.withActiveTables(tables), nil
}
