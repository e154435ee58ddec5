package tui

import "github.com/charmbracelet/bubbles/key"

// sheetKeyMap holds the bindings of the grid in normal mode.
type sheetKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Edit      key.Binding
	EditTitle key.Binding
	RenameTab key.Binding
	AddRow    key.Binding
	RemoveRow key.Binding
	AddColumn key.Binding
	AddTable  key.Binding
	AddTab    key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Grab      key.Binding
	Yank      key.Binding
	YankTotal key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultSheetKeyMap() sheetKeyMap {
	return sheetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "right"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit cell"),
		),
		EditTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit title"),
		),
		RenameTab: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename sheet"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new row"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete row"),
		),
		AddColumn: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "new column"),
		),
		AddTable: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "new section"),
		),
		AddTab: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "new sheet"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev sheet"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next sheet"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move row"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy cell"),
		),
		YankTotal: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy total"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k sheetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.AddRow, k.RemoveRow, k.Grab, k.Help, k.Quit}
}

func (k sheetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.EditTitle, k.RenameTab, k.Grab},
		{k.AddRow, k.RemoveRow, k.AddColumn, k.AddTable, k.AddTab},
		{k.PrevTab, k.NextTab, k.Yank, k.YankTotal},
		{k.Help, k.Quit},
	}
}

// editKeyMap ends an inline edit. Everything else goes to the input.
type editKeyMap struct {
	Commit  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Up      key.Binding
	Down    key.Binding
	Discard key.Binding
}

func defaultEditKeyMap() editKeyMap {
	return editKeyMap{
		Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "save, next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "save, prev")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "save, up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "save, down")),
		Discard: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
	}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Next, k.Down, k.Discard}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Commit, k.Next, k.Prev}, {k.Up, k.Down, k.Discard}}
}

// dragKeyMap is active while a row is grabbed.
type dragKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Drop   key.Binding
	Cancel key.Binding
}

func defaultDragKeyMap() dragKeyMap {
	return dragKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Drop:   key.NewBinding(key.WithKeys("enter", "m"), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop")),
	}
}

func (k dragKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Drop, k.Cancel}
}

func (k dragKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
