package components

import (
	"fmt"
	"strings"

	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RecoveryBar renders a labeled progress bar for capital recovery:
// how much of the outlay the cumulative savings have earned back.
func RecoveryBar(label string, pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	barW := width - lipgloss.Width(label) - 7
	if barW < 4 {
		barW = 4
	}

	filled := int(pct * float64(barW))
	if filled > barW {
		filled = barW
	}

	var barColor lipgloss.Color
	switch {
	case pct >= 1:
		barColor = t.Green
	case pct >= 0.5:
		barColor = t.Accent
	default:
		barColor = t.Orange
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	return labelStyle.Render(label) + " " +
		filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barW-filled)) +
		pctStyle.Render(fmt.Sprintf(" %3.0f%%", pct*100))
}
