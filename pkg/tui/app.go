package tui

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-ledger/pkg/editor"
	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

// statusDuration is how long a StatusMsg stays on screen.
const statusDuration = 3 * time.Second

type App struct {
	sheet     *SheetModel
	width     int
	height    int
	statusMsg string
	statusSeq int
}

func NewApp(ed *editor.Editor, display models.DisplaySettings, logger *slog.Logger) *App {
	return &App{
		sheet: NewSheetModel(ed, display, logger),
	}
}

func (a *App) Init() tea.Cmd {
	return a.sheet.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sheet.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case clearStatusMsg:
		// A newer message keeps its own timer
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	m, cmd := a.sheet.Update(msg)
	if sm, ok := m.(*SheetModel); ok {
		a.sheet = sm
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.sheet.View()

	var statusBar string
	switch {
	case a.statusMsg == "":
		statusBar = NormalStyle.Padding(0, 1).Render(a.sheet.Mode())
	case strings.HasPrefix(a.statusMsg, "Error:"):
		statusBar = ErrorStyle.Padding(0, 1).Render(a.statusMsg)
	default:
		statusBar = StatusStyle.Render(a.statusMsg)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

// StatusMsg shows a transient message in the status bar
type StatusMsg string

type clearStatusMsg struct {
	seq int
}
