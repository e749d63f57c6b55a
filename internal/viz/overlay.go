package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws the non-blank cells of c on top of base, a rendered
// multi-line view. Blank cells keep the underlying text.
func Overlay(base string, c *Canvas) string {
	lines := strings.Split(base, "\n")
	for row := 0; row < c.Height; row++ {
		for len(lines) <= row {
			lines = append(lines, "")
		}
		line := lines[row]
		for col, r := range c.Grid[row] {
			if r == blank {
				continue
			}
			if w := ansi.StringWidth(line); w <= col {
				line += strings.Repeat(" ", col-w+1)
			}
			cell := string(r)
			if hex := c.Colors[row][col]; hex != "" {
				cell = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(cell)
			}
			line = ansi.Truncate(line, col, "") + cell + ansi.TruncateLeft(line, col+1, "")
		}
		lines[row] = line
	}
	return strings.Join(lines, "\n")
}
