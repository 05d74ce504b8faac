package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/daylily/internal/model"
)

const (
	cardWidth  = 30 // inner width, excluding border
	cardHeight = 4  // including border
)

// gridColumns is how many cards fit side by side in width.
func gridColumns(width int) int {
	if width <= 0 {
		return 1
	}
	return max(1, width/(cardWidth+2))
}

// moveCursor applies a (dx, dy) step on a grid of n cards in cols columns.
// The result stays in range; a step past either end stops at the edge.
func moveCursor(cursor, n, cols, dx, dy int) int {
	if n == 0 {
		return 0
	}
	next := cursor + dx + dy*cols
	if dy != 0 && (next < 0 || next >= n) {
		return cursor
	}
	return min(max(next, 0), n-1)
}

// scrollOffset returns the first visible row so that the cursor row lies
// within rows visible rows.
func scrollOffset(offset, cursorRow, rows int) int {
	rows = max(rows, 1)
	if cursorRow < offset {
		return cursorRow
	}
	if cursorRow >= offset+rows {
		return cursorRow - rows + 1
	}
	return offset
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

func renderCard(s Styles, d *model.Daylily, selected bool) string {
	style := s.Card
	if selected {
		style = s.CardSelected
	}
	body := s.CardTitle.Render(truncate(d.Name, cardWidth-2)) + "\n" +
		s.CardSubtitle.Render(truncate(d.Subtitle(), cardWidth-2))
	return style.Width(cardWidth).Render(body)
}

// renderGrid lays visible out in rows of cols cards, showing rows
// rows starting at offset.
func renderGrid(s Styles, visible []*model.Daylily, cursor, cols, offset, rows int) string {
	var lines []string
	for row := offset; row < offset+rows; row++ {
		start := row * cols
		if start >= len(visible) {
			break
		}
		end := min(start+cols, len(visible))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(s, visible[i], i == cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(lines, "\n")
}
