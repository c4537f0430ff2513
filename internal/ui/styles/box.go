package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderBox renders content inside a rounded border with the title embedded
// in the top edge: ╭─ Title ─────╮. Lines wider than the box are truncated.
// When focused the border and title use AccentColor.
func RenderBox(content []string, title string, width int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = AccentColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(borderColor).Bold(focused)

	innerWidth := max(width-2, 1)

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, topBorder(title, innerWidth, borderStyle, titleStyle))
	for _, row := range content {
		if lipgloss.Width(row) > innerWidth {
			row = truncate.StringWithTail(row, uint(innerWidth), "…")
		}
		if w := lipgloss.Width(row); w < innerWidth {
			row += strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render(borderVertical)+row+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}

// topBorder builds ╭─ Title ───╮, falling back to a plain edge when the
// title does not fit.
func topBorder(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	plain := borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	// "─ " + title + " ─" needs at least one title cell.
	if title == "" || innerWidth < 5 {
		return plain
	}

	if lipgloss.Width(title) > innerWidth-4 {
		title = truncate.StringWithTail(title, uint(innerWidth-4), "…")
	}
	dashes := max(innerWidth-3-lipgloss.Width(title), 0)

	return borderStyle.Render(borderTopLeft+borderHorizontal+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, dashes)+borderTopRight)
}
