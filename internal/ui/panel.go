package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar filled to fraction (0..1) with a percentage.
func ProgressBar(fraction float64, width int) string {
	if width < 5 {
		width = 5
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	t := Current()
	filled := int(fraction * float64(width))
	bar := t.Success.Render(strings.Repeat(t.BarFilled, filled)) +
		t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled))
	return fmt.Sprintf("%s %3d%%", bar, int(fraction*100+0.5))
}

// Box frames inner with the current theme's border.
func Box(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel frames lines as one box.
func Panel(lines []string) string { return Box(strings.Join(lines, "\n")) }
