package tui

import (
	"fmt"
	"strings"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/config"
	"github.com/biogazpro/biogaz/internal/content"
	"github.com/biogazpro/biogaz/internal/tui/components"
	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderFeedstocksTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	yieldStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	descStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent)

	maxYield := 0.0
	for _, p := range config.Catalog {
		if p.YieldM3PerKg > maxYield {
			maxYield = p.YieldM3PerKg
		}
	}

	innerW := components.CardInnerWidth(cw)
	barMax := innerW / 3
	if barMax < 8 {
		barMax = 8
	}

	selected := config.LookupFeedstock(a.input.FeedstockKey).Key

	var catalog strings.Builder
	for _, p := range config.Catalog {
		barLen := int(p.YieldM3PerKg / maxYield * float64(barMax))
		if barLen < 1 {
			barLen = 1
		}

		name := nameStyle.Render(fmt.Sprintf("%-16s", p.Label))
		if p.Key == selected {
			name = activeStyle.Render(fmt.Sprintf("%-16s", p.Label+" ●"))
		}

		catalog.WriteString(fmt.Sprintf("%s %s %s\n",
			name,
			barStyle.Render(strings.Repeat("█", barLen)),
			yieldStyle.Render(cli.FormatYield(p.YieldM3PerKg))))
		catalog.WriteString(descStyle.Render("  " + p.Description))
		catalog.WriteString("\n")
	}
	catalog.WriteString(yieldStyle.Render("Your current feedstock is marked ●. Change it on the Calculator tab."))

	b.WriteString(components.ContentCard("Feedstock catalog", catalog.String(), cw))
	b.WriteString("\n")

	// Feature highlights, two cards per row
	halves := components.LayoutRow(cw, 2)
	for i := 0; i < len(content.Features); i += 2 {
		left := components.ContentCard(content.Features[i].Title, content.Features[i].Body, halves[0])
		right := ""
		if i+1 < len(content.Features) {
			right = components.ContentCard(content.Features[i+1].Title, content.Features[i+1].Body, halves[1])
		}
		b.WriteString(components.CardRow([]string{left, right}))
		b.WriteString("\n")
	}

	// Process steps
	var steps strings.Builder
	for i, s := range content.Steps {
		steps.WriteString(fmt.Sprintf("%s %s %s\n",
			activeStyle.Render(fmt.Sprintf("%d.", i+1)),
			nameStyle.Render(fmt.Sprintf("%-14s", s.Title)),
			yieldStyle.Render(s.Body)))
	}
	b.WriteString(components.ContentCard("How it works", strings.TrimRight(steps.String(), "\n"), cw))

	return b.String()
}
