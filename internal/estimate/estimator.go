// Package estimate implements the biogas plant estimation math: daily
// output, energy equivalents, savings, capital cost, payback and the
// 12-month cashflow projection.
package estimate

import (
	"math"

	"github.com/biogazpro/biogaz/internal/config"
	"github.com/biogazpro/biogaz/internal/model"
)

// Conversion and cost constants. Kept as named values so the estimator
// stays auditable against the sizing methodology.
const (
	// ThermalKWhPerM3 is the usable heat equivalent of one m³ of biogas.
	ThermalKWhPerM3 = 6.0

	// ElectricKWhPerM3 is the electricity yield of one m³ of biogas
	// through a small CHP generator.
	ElectricKWhPerM3 = 2.0

	// CO2KgPerM3 is the avoided CO2-equivalent per m³ of biogas burned
	// instead of vented or replaced fossil fuel.
	CO2KgPerM3 = 1.9

	// CapitalSomPerDailyM3 scales installation cost with daily output.
	CapitalSomPerDailyM3 = 1_200_000

	// CapitalFloorSom is the minimum viable installation cost.
	CapitalFloorSom = 12_000_000

	// DaysPerMonth is the flat month length used for savings and payback.
	DaysPerMonth = 30
)

// Compute derives a full estimation result from the given input.
//
// The function is total: unknown feedstock keys fall back to the first
// catalog entry, negative mass clamps to zero and a non-positive
// savings figure yields a nil payback instead of a division blow-up.
// It never returns an error.
func Compute(in model.EstimationInput) model.EstimationResult {
	profile := config.LookupFeedstock(in.FeedstockKey)

	mass := in.DailyMassKg
	if mass < 0 || math.IsNaN(mass) {
		mass = 0
	}
	gasPrice := clampPrice(in.GasUnitPrice)
	powerPrice := clampPrice(in.ElectricityUnitPrice)

	volume := mass * profile.YieldM3PerKg
	thermal := volume * ThermalKWhPerM3
	electric := volume * ElectricKWhPerM3
	monthly := (volume*gasPrice + electric*powerPrice) * DaysPerMonth

	capital := volume * CapitalSomPerDailyM3
	if capital < CapitalFloorSom {
		capital = CapitalFloorSom
	}

	monthly = math.Round(monthly)
	capital = math.Round(capital)

	var payback *float64
	if monthly > 0 {
		p := round1(capital / monthly)
		payback = &p
	}

	return model.EstimationResult{
		FeedstockLabel:       profile.Label,
		BiogasVolumePerDay:   round1(volume),
		ThermalEnergyPerDay:  round1(thermal),
		ElectricEnergyPerDay: round1(electric),
		MonthlySavings:       monthly,
		CapitalCost:          capital,
		PaybackMonths:        payback,
		CO2ReductionPerDay:   round1(volume * CO2KgPerM3),
	}
}

// clampPrice coerces malformed or negative price input to zero.
func clampPrice(p float64) float64 {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// round1 rounds to one decimal, keeping floating-point noise out of results.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
