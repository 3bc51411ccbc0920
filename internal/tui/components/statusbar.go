package components

import (
	"strings"

	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. flash is a transient
// notification (e.g. "Copied to clipboard") shown on the right.
func RenderStatusBar(width int, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [c]opy summary  [q]uit"
	right := ""
	if flash != "" {
		right = lipgloss.NewStyle().Foreground(t.Accent).Render(flash) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
