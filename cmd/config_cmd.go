package cmd

import (
	"fmt"

	"github.com/biogazpro/biogaz/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default feedstock: %s\n", cfg.General.DefaultFeedstock)
	fmt.Printf("    Default mass:      %.0f kg/day\n", cfg.General.DefaultMassKg)
	fmt.Println()

	fmt.Println("  [Prices]")
	fmt.Printf("    Gas:         %.0f so'm/m³\n", cfg.Prices.GasSomPerM3)
	fmt.Printf("    Electricity: %.0f so'm/kWh\n", cfg.Prices.ElectricitySomPerKWh)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `biogaz setup` to reconfigure.")
	return nil
}
