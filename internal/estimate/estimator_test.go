package estimate

import (
	"math"
	"testing"

	"github.com/biogazpro/biogaz/internal/config"
	"github.com/biogazpro/biogaz/internal/model"
)

func TestComputeWorkedExample(t *testing.T) {
	// 600 kg of cattle manure at 1800 so'm/m³ gas and 450 so'm/kWh.
	res := Compute(model.EstimationInput{
		FeedstockKey:         "cattle",
		DailyMassKg:          600,
		GasUnitPrice:         1800,
		ElectricityUnitPrice: 450,
	})

	if res.FeedstockLabel != "Cattle manure" {
		t.Fatalf("FeedstockLabel = %q, want %q", res.FeedstockLabel, "Cattle manure")
	}
	if res.BiogasVolumePerDay != 18.0 {
		t.Fatalf("BiogasVolumePerDay = %.2f, want 18.0", res.BiogasVolumePerDay)
	}
	if res.ThermalEnergyPerDay != 108.0 {
		t.Fatalf("ThermalEnergyPerDay = %.2f, want 108.0", res.ThermalEnergyPerDay)
	}
	if res.ElectricEnergyPerDay != 36.0 {
		t.Fatalf("ElectricEnergyPerDay = %.2f, want 36.0", res.ElectricEnergyPerDay)
	}
	if res.MonthlySavings != 1_458_000 {
		t.Fatalf("MonthlySavings = %.0f, want 1458000", res.MonthlySavings)
	}
	if res.CapitalCost != 21_600_000 {
		t.Fatalf("CapitalCost = %.0f, want 21600000", res.CapitalCost)
	}
	if res.PaybackMonths == nil {
		t.Fatal("PaybackMonths is nil, want ~14.8")
	}
	if math.Abs(*res.PaybackMonths-14.8) > 0.05 {
		t.Fatalf("PaybackMonths = %.2f, want ~14.8", *res.PaybackMonths)
	}
	if res.CO2ReductionPerDay != 34.2 {
		t.Fatalf("CO2ReductionPerDay = %.2f, want 34.2", res.CO2ReductionPerDay)
	}
}

func TestComputeYieldPerFeedstock(t *testing.T) {
	cases := []struct {
		key        string
		wantVolume float64
	}{
		{"cattle", 30.0},  // 1000 * 0.03
		{"poultry", 60.0}, // 1000 * 0.06
		{"food", 90.0},    // 1000 * 0.09
		{"mixed", 50.0},   // 1000 * 0.05
	}

	for _, tc := range cases {
		res := Compute(model.EstimationInput{FeedstockKey: tc.key, DailyMassKg: 1000})
		if res.BiogasVolumePerDay != tc.wantVolume {
			t.Errorf("%s: BiogasVolumePerDay = %.2f, want %.2f", tc.key, res.BiogasVolumePerDay, tc.wantVolume)
		}
	}
}

func TestComputeClampsNonPositiveMass(t *testing.T) {
	for _, mass := range []float64{0, -1, -600, math.NaN()} {
		res := Compute(model.EstimationInput{
			FeedstockKey:         "food",
			DailyMassKg:          mass,
			GasUnitPrice:         1800,
			ElectricityUnitPrice: 450,
		})

		if res.BiogasVolumePerDay != 0 {
			t.Errorf("mass %v: BiogasVolumePerDay = %.2f, want 0", mass, res.BiogasVolumePerDay)
		}
		if res.ThermalEnergyPerDay != 0 || res.ElectricEnergyPerDay != 0 {
			t.Errorf("mass %v: energy fields nonzero for zero volume", mass)
		}
		if res.MonthlySavings != 0 {
			t.Errorf("mass %v: MonthlySavings = %.0f, want 0", mass, res.MonthlySavings)
		}
		if res.CO2ReductionPerDay != 0 {
			t.Errorf("mass %v: CO2ReductionPerDay = %.2f, want 0", mass, res.CO2ReductionPerDay)
		}
		if res.PaybackMonths != nil {
			t.Errorf("mass %v: PaybackMonths = %v, want nil", mass, *res.PaybackMonths)
		}
	}
}

func TestComputeCapitalFloor(t *testing.T) {
	// 10 kg of cattle manure is 0.3 m³/day, far below the floor threshold.
	res := Compute(model.EstimationInput{FeedstockKey: "cattle", DailyMassKg: 10})
	if res.CapitalCost != CapitalFloorSom {
		t.Fatalf("CapitalCost = %.0f, want floor %d", res.CapitalCost, CapitalFloorSom)
	}

	// Large plants scale linearly past the floor.
	big := Compute(model.EstimationInput{FeedstockKey: "food", DailyMassKg: 5000})
	wantCapital := 450.0 * CapitalSomPerDailyM3
	if big.CapitalCost != wantCapital {
		t.Fatalf("CapitalCost = %.0f, want %.0f", big.CapitalCost, wantCapital)
	}
}

func TestComputePaybackNilOnZeroSavings(t *testing.T) {
	// Nonzero volume but both prices zero: savings are zero, payback absent.
	res := Compute(model.EstimationInput{FeedstockKey: "mixed", DailyMassKg: 800})
	if res.BiogasVolumePerDay == 0 {
		t.Fatal("test setup error: expected nonzero volume")
	}
	if res.MonthlySavings != 0 {
		t.Fatalf("MonthlySavings = %.0f, want 0", res.MonthlySavings)
	}
	if res.PaybackMonths != nil {
		t.Fatalf("PaybackMonths = %v, want nil for zero savings", *res.PaybackMonths)
	}
}

func TestComputeUnknownFeedstockFallsBack(t *testing.T) {
	unknown := Compute(model.EstimationInput{FeedstockKey: "algae", DailyMassKg: 600})
	first := Compute(model.EstimationInput{FeedstockKey: config.Catalog[0].Key, DailyMassKg: 600})

	if unknown.FeedstockLabel != first.FeedstockLabel {
		t.Fatalf("fallback label = %q, want %q", unknown.FeedstockLabel, first.FeedstockLabel)
	}
	if unknown.BiogasVolumePerDay != first.BiogasVolumePerDay {
		t.Fatalf("fallback volume = %.2f, want %.2f", unknown.BiogasVolumePerDay, first.BiogasVolumePerDay)
	}
}

func TestComputeClampsNegativePrices(t *testing.T) {
	res := Compute(model.EstimationInput{
		FeedstockKey:         "cattle",
		DailyMassKg:          600,
		GasUnitPrice:         -1800,
		ElectricityUnitPrice: -450,
	})

	if res.MonthlySavings != 0 {
		t.Fatalf("MonthlySavings = %.0f, want 0 for negative prices", res.MonthlySavings)
	}
	if res.PaybackMonths != nil {
		t.Fatal("PaybackMonths should be nil when prices clamp to zero")
	}
	// Volume is price-independent.
	if res.BiogasVolumePerDay != 18.0 {
		t.Fatalf("BiogasVolumePerDay = %.2f, want 18.0", res.BiogasVolumePerDay)
	}
}
