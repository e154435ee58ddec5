package tui

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/pluqqy/pluqqy-ledger/pkg/editor"
	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

type sheetMode int

const (
	modeNormal sheetMode = iota
	modeEdit
	modeDrag
)

// cursor addresses a cell of the active tab by position. row is 0 when
// the table has no rows.
type cursor struct {
	table int
	row   int
	col   int
}

// SheetModel renders the active tab and turns keys into editor commands.
type SheetModel struct {
	editor  *editor.Editor
	display models.DisplaySettings
	logger  *slog.Logger

	mode    sheetMode
	cursor  cursor
	field   editor.Field
	input   textinput.Model
	drag    *editor.DragRef
	confirm *ConfirmationModel

	viewport viewport.Model
	help     help.Model
	showHelp bool
	keys     sheetKeyMap
	editKeys editKeyMap
	dragKeys dragKeyMap

	writeClipboard func(string) error

	width  int
	height int
}

// NewSheetModel creates the grid over ed.
func NewSheetModel(ed *editor.Editor, display models.DisplaySettings, logger *slog.Logger) *SheetModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	m := &SheetModel{
		editor:   ed,
		display:  display,
		logger:   logger,
		input:    ti,
		confirm:  NewConfirmation(),
		viewport: viewport.New(80, 20),
		help:     help.New(),
		keys:     defaultSheetKeyMap(),
		editKeys: defaultEditKeyMap(),
		dragKeys: defaultDragKeyMap(),
	}
	m.writeClipboard = clipboard.WriteAll
	m.SetSize(80, 24)
	return m
}

// SetSize updates the dimensions available to the grid
func (m *SheetModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Width = width
}

// activeTab returns the displayed tab.
func (m *SheetModel) activeTab() models.Tab {
	tab, _ := m.editor.Document().ActiveTab()
	return tab
}

// currentTable returns the table under the cursor.
func (m *SheetModel) currentTable() (models.Table, bool) {
	tab := m.activeTab()
	if m.cursor.table < 0 || m.cursor.table >= len(tab.Tables) {
		return models.Table{}, false
	}
	return tab.Tables[m.cursor.table], true
}

// clampCursor pulls the cursor back inside the active tab after the
// document changed shape.
func (m *SheetModel) clampCursor() {
	tab := m.activeTab()
	if len(tab.Tables) == 0 {
		m.cursor = cursor{}
		return
	}
	m.cursor.table = max(0, min(m.cursor.table, len(tab.Tables)-1))
	t := tab.Tables[m.cursor.table]
	m.cursor.row = max(0, min(m.cursor.row, len(t.Rows)-1))
	m.cursor.col = max(0, min(m.cursor.col, len(t.Columns)-1))
}

// Mode names the current input mode for the status line.
func (m *SheetModel) Mode() string {
	switch m.mode {
	case modeEdit:
		return "EDIT"
	case modeDrag:
		return "MOVE"
	default:
		return "NORMAL"
	}
}
