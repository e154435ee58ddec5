package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmationModel(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.KeyMsg
		wantConfirmed bool
		wantCancelled bool
		wantActive    bool
	}{
		{"yes", runeKey("y"), true, false, false},
		{"upper yes", runeKey("Y"), true, false, false},
		{"no", runeKey("n"), false, true, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, false, true, false},
		{"other keys are ignored", runeKey("x"), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var confirmed, cancelled bool
			m := NewConfirmation()
			m.Show(ConfirmationConfig{Message: "Delete row 1?", Destructive: true},
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil },
			)
			assert.True(t, m.Active())

			m.Update(tt.key)

			assert.Equal(t, tt.wantConfirmed, confirmed)
			assert.Equal(t, tt.wantCancelled, cancelled)
			assert.Equal(t, tt.wantActive, m.Active())
		})
	}
}

func TestConfirmationModel_View(t *testing.T) {
	m := NewConfirmation()
	assert.Empty(t, m.ViewWithWidth(40))

	m.Show(ConfirmationConfig{Message: "Delete row 1?"}, nil, nil)
	view := m.ViewWithWidth(0)
	assert.Equal(t, "Delete row 1? [y/n]", view)

	m.Update(runeKey("n"))
	assert.Empty(t, m.ViewWithWidth(40))
}
