package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the title on the left and summary on the right of a
// single padded line.
func renderHeader(width int, title, summary string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	titleRendered := titleStyle.Render(title)
	summaryRendered := TotalStyle.Render(summary)

	// -2 for the left and right padding
	gap := width - 2 - lipgloss.Width(titleRendered) - lipgloss.Width(summaryRendered)
	if gap < 1 {
		gap = 1
	}

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		summaryRendered,
	))
}
