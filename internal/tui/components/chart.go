package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// DivergingBarChart renders a bar chart whose values may cross zero,
// with positive bars above the axis and negative bars below. Made for
// the cumulative cashflow series: early months hang below the zero
// line, later months climb above it.
func DivergingBarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	maxPos, maxNeg := 0.0, 0.0
	for _, v := range values {
		if v > maxPos {
			maxPos = v
		}
		if -v > maxNeg {
			maxNeg = -v
		}
	}
	if maxPos == 0 && maxNeg == 0 {
		maxPos = 1
	}

	if height < 4 {
		height = 4
	}

	// Split rows between the two halves proportionally to their extents.
	rowsUp := 0
	rowsDown := 0
	total := maxPos + maxNeg
	if maxPos > 0 {
		rowsUp = int(math.Round(float64(height) * maxPos / total))
		if rowsUp < 1 {
			rowsUp = 1
		}
	}
	if maxNeg > 0 {
		rowsDown = height - rowsUp
		if rowsDown < 1 {
			rowsDown = 1
			if rowsUp > 1 {
				rowsUp = height - 1
			}
		}
	}

	yLabelW := len(chartAmountLabel(maxPos))
	if w := len("-" + chartAmountLabel(maxNeg)); w > yLabelW {
		yLabelW = w
	}
	if yLabelW < 4 {
		yLabelW = 4
	}

	n := len(values)
	chartW := width - yLabelW - 1
	gap := 1
	barW := (chartW - (n - 1)) / n
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + (n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder

	writeRow := func(yLabel string, cells []string) {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, yLabel)))
		b.WriteString(axisStyle.Render("│"))
		for i, cell := range cells {
			if i > 0 && gap > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	// Positive half, top row first.
	for row := rowsUp; row >= 1; row-- {
		rowTop := maxPos * float64(row) / float64(rowsUp)
		rowBottom := maxPos * float64(row-1) / float64(rowsUp)

		cells := make([]string, n)
		for i, v := range values {
			switch {
			case v >= rowTop:
				cells[i] = posStyle.Render(strings.Repeat("█", barW))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				cells[i] = posStyle.Render(strings.Repeat(string(blocks[idx]), barW))
			default:
				cells[i] = strings.Repeat(" ", barW)
			}
		}

		yLabel := ""
		if row == rowsUp {
			yLabel = chartAmountLabel(maxPos)
		}
		writeRow(yLabel, cells)
	}

	// Zero axis.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Negative half, shallow rows first.
	for row := 1; row <= rowsDown; row++ {
		rowShallow := maxNeg * float64(row-1) / float64(rowsDown)
		rowDeep := maxNeg * float64(row) / float64(rowsDown)

		cells := make([]string, n)
		for i, v := range values {
			depth := -v
			switch {
			case depth >= rowDeep:
				cells[i] = negStyle.Render(strings.Repeat("█", barW))
			case depth > rowShallow+(rowDeep-rowShallow)/2:
				// No lower-hanging partial blocks exist, round to a full cell.
				cells[i] = negStyle.Render(strings.Repeat("█", barW))
			default:
				cells[i] = strings.Repeat(" ", barW)
			}
		}

		yLabel := ""
		if row == rowsDown {
			yLabel = "-" + chartAmountLabel(maxNeg)
		}
		writeRow(yLabel, cells)
	}

	// X-axis labels.
	if len(labels) == n {
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		var axis strings.Builder
		for i, lbl := range labels {
			if i > 0 && gap > 0 {
				axis.WriteString(" ")
			}
			if len(lbl) > barW {
				lbl = lbl[:barW]
			}
			axis.WriteString(fmt.Sprintf("%-*s", barW, lbl))
		}
		b.WriteString(labelStyle.Render(strings.TrimRight(axis.String(), " ")))
	}

	return b.String()
}

// chartAmountLabel formats a chart axis amount with magnitude suffixes.
func chartAmountLabel(v float64) string {
	switch {
	case v >= 1e9:
		return trimTrailingZero(fmt.Sprintf("%.1fB", v/1e9))
	case v >= 1e6:
		return trimTrailingZero(fmt.Sprintf("%.1fM", v/1e6))
	case v >= 1e3:
		return trimTrailingZero(fmt.Sprintf("%.1fk", v/1e3))
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func trimTrailingZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}
