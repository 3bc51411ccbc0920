package tui

import (
	"testing"

	"github.com/biogazpro/biogaz/internal/model"
)

func testInput() model.EstimationInput {
	return model.EstimationInput{
		FeedstockKey:         "cattle",
		DailyMassKg:          600,
		GasUnitPrice:         1800,
		ElectricityUnitPrice: 450,
	}
}

func TestRecomputeIsMemoized(t *testing.T) {
	a := NewApp(testInput())

	if len(a.points) != 12 {
		t.Fatalf("points len = %d, want 12", len(a.points))
	}
	before := &a.points[0]

	// Unchanged input must not rebuild the projection.
	a.recompute()
	if &a.points[0] != before {
		t.Error("recompute rebuilt the projection for an unchanged input")
	}

	// A changed input must.
	a.input.DailyMassKg = 700
	a.recompute()
	if &a.points[0] == before {
		t.Error("recompute did not rebuild after the input changed")
	}
	if a.result.BiogasVolumePerDay != 21.0 {
		t.Errorf("BiogasVolumePerDay = %.1f, want 21.0 after change", a.result.BiogasVolumePerDay)
	}
}

func TestCycleFeedstockWraps(t *testing.T) {
	a := NewApp(testInput())

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		seen[a.input.FeedstockKey] = true
		a.cycleFeedstock(1)
	}
	if a.input.FeedstockKey != "cattle" {
		t.Fatalf("after 4 forward steps key = %q, want wrap back to cattle", a.input.FeedstockKey)
	}
	if len(seen) != 4 {
		t.Fatalf("cycled through %d distinct feedstocks, want 4", len(seen))
	}

	a.cycleFeedstock(-1)
	if a.input.FeedstockKey != "mixed" {
		t.Fatalf("backward step key = %q, want mixed", a.input.FeedstockKey)
	}
}

func TestCycleFeedstockFromUnknownKey(t *testing.T) {
	in := testInput()
	in.FeedstockKey = "algae"
	a := NewApp(in)

	// Unknown keys resolve to the first entry, so one step lands on the second.
	a.cycleFeedstock(1)
	if a.input.FeedstockKey != "poultry" {
		t.Fatalf("key = %q, want poultry", a.input.FeedstockKey)
	}
}
