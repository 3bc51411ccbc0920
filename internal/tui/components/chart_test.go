package components

import (
	"strings"
	"testing"

	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSums(t *testing.T) {
	cases := []struct {
		total int
		n     int
	}{
		{100, 3},
		{99, 4},
		{7, 2},
	}

	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}

	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestDivergingBarChartCrossesZero(t *testing.T) {
	theme.SetActive("flexoki-dark")

	// A cashflow-shaped series: deep negative climbing to positive.
	values := []float64{-20, -17, -14, -11, -8, -5, -2, 1, 4, 7, 10, 13}
	labels := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

	chart := DivergingBarChart(values, labels, 60, 10)
	if chart == "" {
		t.Fatal("chart is empty")
	}
	if !strings.Contains(chart, "┼") {
		t.Error("chart is missing the zero axis")
	}

	lines := strings.Split(chart, "\n")
	if len(lines) < 10 {
		t.Errorf("chart has %d lines, want at least the requested height 10", len(lines))
	}
}

func TestDivergingBarChartAllNegative(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{-12, -12, -12}
	chart := DivergingBarChart(values, []string{"1", "2", "3"}, 40, 6)
	if chart == "" {
		t.Fatal("all-negative chart is empty")
	}
	if !strings.Contains(chart, "█") {
		t.Error("all-negative chart rendered no bars")
	}
}

func TestDivergingBarChartEmpty(t *testing.T) {
	if DivergingBarChart(nil, nil, 40, 6) != "" {
		t.Error("empty series should render nothing")
	}
}

func TestMetricCardRowJoins(t *testing.T) {
	theme.SetActive("flexoki-dark")

	cards := []struct{ Label, Value, Note string }{
		{"Biogas", "18.0 m³", "per day"},
		{"Electricity", "36.0 kWh", "per day"},
	}
	row := MetricCardRow(cards, 60)
	if row == "" {
		t.Fatal("card row is empty")
	}
	if !strings.Contains(row, "18.0 m³") || !strings.Contains(row, "36.0 kWh") {
		t.Error("card row is missing card values")
	}
}
