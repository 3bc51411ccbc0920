package tui

import (
	"fmt"
	"strings"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/estimate"
	"github.com/biogazpro/biogaz/internal/tui/components"
	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCashflowTab(cw int) string {
	t := theme.Active
	res := a.result
	points := a.points
	var b strings.Builder

	// Summary cards
	cards := []struct{ Label, Value, Note string }{
		{"Capital outlay", cli.FormatSomShort(res.CapitalCost) + " so'm", "month 0 balance"},
		{"Monthly savings", cli.FormatSomShort(res.MonthlySavings) + " so'm", "added every month"},
		{"Year-end balance", cli.FormatSomShort(points[len(points)-1].Cumulative) + " so'm", "after 12 months"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Cumulative balance chart
	values := make([]float64, len(points))
	labels := make([]string, len(points))
	for i, p := range points {
		values[i] = p.Cumulative
		labels[i] = fmt.Sprintf("%d", p.Month)
	}

	chartInnerW := components.CardInnerWidth(cw)
	chartH := 12
	if a.height < 32 {
		chartH = 8
	}
	b.WriteString(components.ContentCard(
		"Cumulative cashflow (12 months)",
		components.DivergingBarChart(values, labels, chartInnerW, chartH),
		cw,
	))
	b.WriteString("\n")

	// Capital recovery after the first year
	recovered := 0.0
	if res.CapitalCost > 0 {
		recovered = res.MonthlySavings * float64(estimate.ProjectionMonths) / res.CapitalCost
	}
	bar := components.RecoveryBar("Capital recovery, year one", recovered, components.CardInnerWidth(cw))

	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var note string
	if be := estimate.BreakEvenMonth(points); be > 0 {
		note = noteStyle.Render(fmt.Sprintf("Break-even in month %d.", be))
	} else if res.PaybackMonths != nil {
		note = noteStyle.Render(fmt.Sprintf("Break-even after the first year, ~%.1f months in.", *res.PaybackMonths))
	} else {
		note = noteStyle.Render("No payback at current prices. Set prices on the Calculator tab.")
	}

	b.WriteString(components.ContentCard("", bar+"\n"+note, cw))

	return b.String()
}
