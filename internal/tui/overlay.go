package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// rect is a cell-aligned box on screen.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// overlayAt composites an overlay string on top of a base string at the given
// character position (x, y). Both are treated as line-based grids.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			if gap := width - pos - ansi.StringWidth(right); gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}
		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// centered places overlay in the middle of a width x height screen and
// returns the composite plus the box it occupies.
func centered(base, overlay string, width, height int) (string, rect) {
	box := boxRect(overlay, width, height)
	return overlayAt(base, overlay, box.x, box.y, width, height), box
}

// boxRect is where centered would place overlay.
func boxRect(overlay string, width, height int) rect {
	lines := splitLines(overlay)
	box := rect{w: maxLineWidth(lines), h: len(lines)}
	box.x = max(0, (width-box.w)/2)
	box.y = max(0, (height-box.h)/2)
	return box
}

// dim strips styling from every line of s and renders it faint, for the area
// behind a modal.
func dim(s string) string {
	lines := splitLines(s)
	for i, line := range lines {
		lines[i] = backdropStyle.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
