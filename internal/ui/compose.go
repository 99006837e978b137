package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"alphadash/internal/filter"
)

// placeOverlay draws box over base with its top-left corner at (x, y).
// Lines of base under the box are cut around it; base grows as needed.
func placeOverlay(base, box string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	for len(lines) < y+len(boxLines) {
		lines = append(lines, "")
	}
	for i, bl := range boxLines {
		row := lines[y+i]
		w := ansi.StringWidth(row)
		left := ansi.Truncate(row, x, "")
		if w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if end := x + ansi.StringWidth(bl); w > end {
			right = ansi.TruncateLeft(row, end, "")
		}
		lines[y+i] = left + bl + right
	}
	return strings.Join(lines, "\n")
}

// boxRegion returns the cells a rendered box covers at (x, y).
func boxRegion(box string, x, y int) filter.Region {
	return filter.Region{X: x, Y: y, W: lipgloss.Width(box), H: lipgloss.Height(box)}
}

// fitX shifts a w-wide box starting at x left until it fits in width.
func fitX(x, w, width int) int {
	if width > 0 && x+w > width {
		x = width - w
	}
	return max(0, x)
}

// centerIn returns the top-left corner that centers box in width x height.
func centerIn(box string, width, height int) (int, int) {
	x := (width - lipgloss.Width(box)) / 2
	y := (height - lipgloss.Height(box)) / 2
	return max(0, x), max(0, y)
}

// padLines pads s with empty lines up to height.
func padLines(s string, height int) string {
	n := strings.Count(s, "\n") + 1
	if n >= height {
		return s
	}
	return s + strings.Repeat("\n", height-n)
}
