package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-ledger/internal/testutil"
	"github.com/pluqqy/pluqqy-ledger/pkg/editor"
	"github.com/pluqqy/pluqqy-ledger/pkg/models"
	"github.com/pluqqy/pluqqy-ledger/pkg/sheet"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

// newTestSheet returns a grid over the sample document with the clipboard
// stubbed out.
func newTestSheet(t *testing.T) *SheetModel {
	t.Helper()
	ed := editor.New(sheet.SampleDocument(sheet.NewIDGenerator()), testutil.NewTestLogger(t))
	m := NewSheetModel(ed, models.DefaultSettings().Display, testutil.NewTestLogger(t))
	m.writeClipboard = func(string) error { return nil }
	return m
}

// press feeds keys one at a time and returns the command of the last one.
func press(m *SheetModel, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

// keys turns each rune of s into its own key press.
func keys(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, runeKey(string(r)))
	}
	return out
}

func statusOf(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(StatusMsg)
	require.True(t, ok, "expected a StatusMsg")
	return string(msg)
}

func tablesOf(t *testing.T, m *SheetModel) []models.Table {
	t.Helper()
	tab, ok := m.editor.Document().ActiveTab()
	require.True(t, ok)
	return tab.Tables
}

func rowIDsOf(table models.Table) []string {
	ids := make([]string, len(table.Rows))
	for i, r := range table.Rows {
		ids[i] = r.ID
	}
	return ids
}
