package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSheetModel_View(t *testing.T) {
	m := newTestSheet(t)
	m.SetSize(100, 30)
	view := m.View()

	for _, want := range []string{
		"ledger",
		"Total $23,741.00",
		"1 #Sheet 1",
		"Section 1",
		"Asset",
		"IRR",
		"Value",
		"Fidelity - Plaid Ch…",
		"$23,631",
	} {
		assert.Contains(t, view, want)
	}

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100, "line %q is too wide", line)
	}
}

func TestSheetModel_ViewTabsAndEmptyTables(t *testing.T) {
	m := newTestSheet(t)
	press(m, runeKey("s"))
	press(m, runeKey("d"), runeKey("y"), runeKey("d"), runeKey("y"))

	view := m.View()
	assert.Contains(t, view, "1 #Sheet 1")
	assert.Contains(t, view, "2 #Sheet 2")
	assert.Contains(t, view, "Section 2")
	assert.Contains(t, view, "no rows, press n to add one")
	assert.Contains(t, view, "Total $0.00")
	assert.Contains(t, view, "Total $23,741.00", "the header sums every sheet")
}

func TestSheetModel_ViewConfirmation(t *testing.T) {
	m := newTestSheet(t)
	press(m, runeKey("d"))
	assert.Contains(t, m.View(), "Delete row 1 of Section 1? [y/n]")

	press(m, runeKey("n"))
	assert.NotContains(t, m.View(), "[y/n]")
}

func TestSheetModel_ViewEditing(t *testing.T) {
	m := newTestSheet(t)
	press(m, runeKey("t"))
	press(m, keys("!")...)
	assert.Contains(t, m.View(), "Section 1!")

	press(m, escKey)
	assert.NotContains(t, m.View(), "Section 1!")
}

func TestSheetModel_ViewScrollsToCursor(t *testing.T) {
	m := newTestSheet(t)
	m.SetSize(80, 12)
	for i := 0; i < 12; i++ {
		press(m, runeKey("n"))
	}
	m.View()
	assert.Positive(t, m.viewport.YOffset, "the new bottom row is scrolled into view")

	press(m, keys(strings.Repeat("k", 20))...)
	m.View()
	assert.LessOrEqual(t, m.viewport.YOffset, 3, "the first row is back in view")
}
