package cmd

import (
	"fmt"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/estimate"
	"github.com/biogazpro/biogaz/internal/export"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compute the plant estimate for the given feedstock and prices",
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	in := buildInput()
	res := estimate.Compute(in)

	if flagQuiet {
		fmt.Print(export.Summary(res))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BIOGAS PLANT ESTIMATE"))
	fmt.Println()

	rows := [][]string{
		{"Feedstock", res.FeedstockLabel},
		{"Daily input", cli.FormatMass(in.DailyMassKg)},
		{"---"},
		{"Biogas output", cli.FormatVolume(res.BiogasVolumePerDay) + "/day"},
		{"Thermal energy", cli.FormatEnergy(res.ThermalEnergyPerDay) + "/day"},
		{"Electric energy", cli.FormatEnergy(res.ElectricEnergyPerDay) + "/day"},
		{"CO2 reduction", cli.FormatCO2(res.CO2ReductionPerDay) + "/day"},
		{"---"},
		{"Monthly savings", cli.FormatSom(res.MonthlySavings)},
		{"Capital cost", cli.FormatSom(res.CapitalCost)},
		{"Payback period", cli.FormatPayback(res.PaybackMonths)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if res.PaybackMonths == nil && res.BiogasVolumePerDay > 0 {
		fmt.Println(cli.Muted("  Set gas or electricity prices to see a payback period."))
	}
	fmt.Println(cli.Muted("  Run `biogaz cashflow` for the 12-month projection."))

	return nil
}
