// Package cmd implements the biogaz CLI commands.
package cmd

import (
	"os"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/config"
	"github.com/biogazpro/biogaz/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagFeedstock  string
	flagMass       string
	flagGasPrice   string
	flagPowerPrice string
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "biogaz",
	Short: "Biogas plant estimation calculator",
	Long: "Estimate a biogas plant from daily feedstock input: gas output,\n" +
		"energy equivalents, savings in so'm, capital cost, payback period\n" +
		"and a 12-month cashflow projection.",
	RunE: runEstimate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().StringVarP(&flagFeedstock, "feedstock", "f", cfg.General.DefaultFeedstock,
		"Feedstock key: cattle, poultry, food, mixed")
	rootCmd.PersistentFlags().StringVarP(&flagMass, "mass", "m", cli.FormatFloat(cfg.General.DefaultMassKg),
		"Daily feedstock mass in kg")
	rootCmd.PersistentFlags().StringVar(&flagGasPrice, "gas-price", cli.FormatFloat(cfg.Prices.GasSomPerM3),
		"Gas unit price in so'm per m³")
	rootCmd.PersistentFlags().StringVar(&flagPowerPrice, "power-price", cli.FormatFloat(cfg.Prices.ElectricitySomPerKWh),
		"Electricity unit price in so'm per kWh")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"Plain output without boxes or hints")
}

// buildInput assembles the estimation input from flags. Numeric flags
// are coerced, never rejected: garbage degrades to zero.
func buildInput() model.EstimationInput {
	return model.EstimationInput{
		FeedstockKey:         flagFeedstock,
		DailyMassKg:          cli.ParseAmount(flagMass),
		GasUnitPrice:         cli.ParseAmount(flagGasPrice),
		ElectricityUnitPrice: cli.ParseAmount(flagPowerPrice),
	}
}
