package export

import (
	"strings"
	"testing"

	"github.com/biogazpro/biogaz/internal/estimate"
	"github.com/biogazpro/biogaz/internal/model"
)

func TestSummaryFixedFormat(t *testing.T) {
	res := estimate.Compute(model.EstimationInput{
		FeedstockKey:         "cattle",
		DailyMassKg:          600,
		GasUnitPrice:         1800,
		ElectricityUnitPrice: 450,
	})

	got := Summary(res)

	wantLines := []string{
		"Biogas plant estimate",
		"Feedstock:       Cattle manure",
		"Biogas output:   18.0 m³/day",
		"Electric output: 36.0 kWh/day",
		"Monthly savings: 1 458 000 so'm",
		"Payback period:  14.8 months",
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != len(wantLines) {
		t.Fatalf("summary has %d lines, want %d:\n%s", len(lines), len(wantLines), got)
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestSummaryNoPayback(t *testing.T) {
	res := estimate.Compute(model.EstimationInput{FeedstockKey: "mixed", DailyMassKg: 0})

	got := Summary(res)
	if !strings.Contains(got, "no payback at current prices") {
		t.Fatalf("summary missing absent-payback marker:\n%s", got)
	}
	if strings.Contains(got, "Inf") || strings.Contains(got, "NaN") {
		t.Fatalf("summary leaked a non-finite value:\n%s", got)
	}
}
