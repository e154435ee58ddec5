package sheet

import "fmt"

// Seed is the last value issued by each counter of an IDGenerator.
type Seed struct {
	Tab   int
	Table int
	Row   int
}

// IDGenerator issues monotonic ids for tabs, tables and rows. The row
// counter is shared by every table of every tab and is never reset.
//
// An IDGenerator is shared by all snapshots derived from one Document, so
// an id issued by any snapshot is never issued again.
type IDGenerator struct {
	last Seed
}

// NewIDGenerator returns a generator whose first ids are tab-1, table-1
// and row-1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewIDGeneratorFrom returns a generator that continues after seed.
func NewIDGeneratorFrom(seed Seed) *IDGenerator {
	return &IDGenerator{last: seed}
}

// Peek returns the last issued values without advancing.
func (g *IDGenerator) Peek() Seed {
	return g.last
}

// NextTab advances the tab counter.
func (g *IDGenerator) NextTab() int {
	g.last.Tab++
	return g.last.Tab
}

// NextTable advances the table counter.
func (g *IDGenerator) NextTable() int {
	g.last.Table++
	return g.last.Table
}

// NextRow advances the shared row counter.
func (g *IDGenerator) NextRow() int {
	g.last.Row++
	return g.last.Row
}

func tabID(n int) string   { return fmt.Sprintf("tab-%d", n) }
func tableID(n int) string { return fmt.Sprintf("table-%d", n) }
func rowID(n int) string   { return fmt.Sprintf("row-%d", n) }

func columnID(table, n int) string {
	return fmt.Sprintf("col-%d-%d", table, n)
}
