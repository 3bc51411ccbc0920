package estimate

import (
	"math"

	"github.com/biogazpro/biogaz/internal/model"
)

// ProjectionMonths is the length of the cashflow projection.
const ProjectionMonths = 12

// Project builds the cumulative cashflow series for the first year of
// operation. The balance starts at -capitalCost (the outlay at month
// zero) and each month adds monthlySavings. The series always has
// exactly ProjectionMonths points with months 1..12 in order, whatever
// the sign of the inputs.
func Project(capitalCost, monthlySavings float64) []model.CashflowPoint {
	points := make([]model.CashflowPoint, 0, ProjectionMonths)

	running := -capitalCost
	for month := 1; month <= ProjectionMonths; month++ {
		running += monthlySavings
		points = append(points, model.CashflowPoint{
			Month:      month,
			Cumulative: math.Round(running),
		})
	}

	return points
}

// BreakEvenMonth returns the first month whose cumulative balance is
// non-negative, or 0 if the projection never breaks even.
func BreakEvenMonth(points []model.CashflowPoint) int {
	for _, p := range points {
		if p.Cumulative >= 0 {
			return p.Month
		}
	}
	return 0
}
