package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// fitCell truncates s to width terminal cells and pads it to exactly that
// width. Wide runes count double.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = truncate.StringWithTail(s, uint(width), ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// cellWidth converts a column's display width into terminal cells.
func cellWidth(width, scale int) int {
	if scale <= 0 {
		scale = 1
	}
	w := width / scale
	if w < minCellWidth {
		return minCellWidth
	}
	return w
}

const minCellWidth = 4
