package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument(NewIDGenerator())

	require.Equal(t, 1, doc.Len())
	assert.Equal(t, 0, doc.ActiveIndex())

	tab, ok := doc.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, "tab-1", tab.ID)
	assert.Equal(t, "#Sheet 1", tab.Name)
	require.Len(t, tab.Tables, 1)

	table := tab.Tables[0]
	assert.Equal(t, "table-1", table.ID)
	assert.Equal(t, "Section 1", table.Title)
	require.Len(t, table.Columns, 3)
	assert.Equal(t, "Asset", table.Columns[0].Name)
	assert.Equal(t, "IRR", table.Columns[1].Name)
	assert.Equal(t, "Value", table.Columns[2].Name)
	assert.Equal(t, 200, table.Columns[0].Width)
	assert.Equal(t, "col-1-3", table.Columns[2].ID)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "row-1", table.Rows[0].ID)
	assert.Equal(t, "row-2", table.Rows[1].ID)
	for _, r := range table.Rows {
		assert.Equal(t, []string{"", "", ""}, r.Values)
	}
}

func TestNewDocument_NilGenerator(t *testing.T) {
	doc := NewDocument(nil)
	require.NotNil(t, doc.IDs())
	assert.Equal(t, Seed{Tab: 1, Table: 1, Row: 2}, doc.IDs().Peek())
}

func TestSampleDocument(t *testing.T) {
	doc := SampleDocument(NewIDGenerator())
	tab, _ := doc.ActiveTab()
	assert.Equal(t, "23741.00", ComputeTotal(tab.Tables[0]).StringFixed(2))
}

func TestIDGenerator_Seeded(t *testing.T) {
	ids := NewIDGeneratorFrom(Seed{Tab: 4, Table: 9, Row: 20})
	doc := NewDocument(ids)

	tab, _ := doc.ActiveTab()
	assert.Equal(t, "tab-5", tab.ID)
	assert.Equal(t, "table-10", tab.Tables[0].ID)
	assert.Equal(t, "Section 10", tab.Tables[0].Title)
	assert.Equal(t, "row-21", tab.Tables[0].Rows[0].ID)
	assert.Equal(t, "row-22", tab.Tables[0].Rows[1].ID)
}

func TestTabs_ReturnsCopies(t *testing.T) {
	doc := NewDocument(NewIDGenerator())

	tabs := doc.Tabs()
	tabs[0].Name = "changed"
	tabs[0].Tables[0].Rows[0].Values[0] = "changed"

	tab, _ := doc.ActiveTab()
	assert.Equal(t, "#Sheet 1", tab.Name)
	assert.Equal(t, "", tab.Tables[0].Rows[0].Values[0])
}

func TestTab_OutOfRange(t *testing.T) {
	doc := NewDocument(NewIDGenerator())
	_, err := doc.Tab(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestZeroDocument(t *testing.T) {
	var doc Document

	_, ok := doc.ActiveTab()
	assert.False(t, ok)
	_, _, ok = doc.LocateRow("row-1")
	assert.False(t, ok)

	doc = doc.AddTab()
	assert.Equal(t, 1, doc.Len())
	assert.NotNil(t, doc.IDs())
}

func TestFindTableAndLocateRow(t *testing.T) {
	doc := NewDocument(NewIDGenerator())
	doc, _ = doc.AddTable("tab-1")

	table, ok := doc.FindTable("table-2")
	require.True(t, ok)
	assert.Equal(t, "Section 2", table.Title)

	tableID, index, ok := doc.LocateRow("row-4")
	require.True(t, ok)
	assert.Equal(t, "table-2", tableID)
	assert.Equal(t, 1, index)

	_, ok = doc.FindTable("table-9")
	assert.False(t, ok)
}
