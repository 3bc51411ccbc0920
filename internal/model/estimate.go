// Package model defines domain types for biogaz estimations.
package model

// EstimationInput holds the user-adjustable parameters for one estimation.
// A fresh value is built on every recomputation; nothing is persisted.
type EstimationInput struct {
	FeedstockKey         string
	DailyMassKg          float64
	GasUnitPrice         float64 // so'm per m³ of biogas
	ElectricityUnitPrice float64 // so'm per kWh
}

// EstimationResult is the immutable snapshot derived from one input.
// All numeric fields are pre-rounded to their display precision.
type EstimationResult struct {
	FeedstockLabel       string
	BiogasVolumePerDay   float64  // m³/day
	ThermalEnergyPerDay  float64  // kWh/day
	ElectricEnergyPerDay float64  // kWh/day
	MonthlySavings       float64  // so'm
	CapitalCost          float64  // so'm
	PaybackMonths        *float64 // nil when monthly savings are zero or negative
	CO2ReductionPerDay   float64  // kg/day
}

// CashflowPoint is one month of the cumulative cashflow projection.
type CashflowPoint struct {
	Month      int     // 1..12
	Cumulative float64 // signed so'm, capital outlay counted as negative
}
