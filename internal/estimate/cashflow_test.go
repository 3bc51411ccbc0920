package estimate

import (
	"testing"

	"github.com/biogazpro/biogaz/internal/model"
)

func TestProjectShape(t *testing.T) {
	points := Project(21_600_000, 1_458_000)

	if len(points) != ProjectionMonths {
		t.Fatalf("len(points) = %d, want %d", len(points), ProjectionMonths)
	}
	for i, p := range points {
		if p.Month != i+1 {
			t.Fatalf("points[%d].Month = %d, want %d", i, p.Month, i+1)
		}
	}

	wantFirst := -21_600_000.0 + 1_458_000
	if points[0].Cumulative != wantFirst {
		t.Fatalf("month 1 cumulative = %.0f, want %.0f", points[0].Cumulative, wantFirst)
	}

	wantLast := -21_600_000.0 + 12*1_458_000
	if points[11].Cumulative != wantLast {
		t.Fatalf("month 12 cumulative = %.0f, want %.0f", points[11].Cumulative, wantLast)
	}
}

func TestProjectZeroSavingsStaysFlat(t *testing.T) {
	points := Project(12_000_000, 0)

	if len(points) != ProjectionMonths {
		t.Fatalf("len(points) = %d, want %d", len(points), ProjectionMonths)
	}
	for _, p := range points {
		if p.Cumulative != -12_000_000 {
			t.Fatalf("month %d cumulative = %.0f, want -12000000", p.Month, p.Cumulative)
		}
	}
}

func TestProjectNegativeSavingsDeclines(t *testing.T) {
	points := Project(12_000_000, -100_000)

	prev := -12_000_000.0
	for _, p := range points {
		if p.Cumulative >= prev {
			t.Fatalf("month %d cumulative = %.0f, want below %.0f", p.Month, p.Cumulative, prev)
		}
		prev = p.Cumulative
	}
}

func TestBreakEvenMonth(t *testing.T) {
	cases := []struct {
		name    string
		capital float64
		savings float64
		want    int
	}{
		{"mid-year", 5_000_000, 1_000_000, 5},
		{"first month", 900_000, 1_000_000, 1},
		{"never", 50_000_000, 1_000_000, 0},
		{"zero savings", 12_000_000, 0, 0},
	}

	for _, tc := range cases {
		points := Project(tc.capital, tc.savings)
		if got := BreakEvenMonth(points); got != tc.want {
			t.Errorf("%s: BreakEvenMonth = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestBreakEvenMonthEmpty(t *testing.T) {
	if got := BreakEvenMonth(nil); got != 0 {
		t.Fatalf("BreakEvenMonth(nil) = %d, want 0", got)
	}
	if got := BreakEvenMonth([]model.CashflowPoint{}); got != 0 {
		t.Fatalf("BreakEvenMonth(empty) = %d, want 0", got)
	}
}
