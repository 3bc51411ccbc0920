package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to biogaz!")
	fmt.Println()

	// 1. Default feedstock
	fmt.Println("  1. Default feedstock")
	for i, p := range config.Catalog {
		marker := ""
		if p.Key == cfg.General.DefaultFeedstock {
			marker = " [current]"
		}
		fmt.Printf("     (%d) %s — %s%s\n", i+1, p.Label, cli.FormatYield(p.YieldM3PerKg), marker)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	for i := range config.Catalog {
		if choice == fmt.Sprintf("%d", i+1) {
			cfg.General.DefaultFeedstock = config.Catalog[i].Key
		}
	}
	fmt.Println()

	// 2. Default daily mass
	fmt.Println("  2. Default daily feedstock mass (kg)")
	fmt.Printf("     Current: %.0f\n", cfg.General.DefaultMassKg)
	fmt.Print("     > ")
	massIn, _ := reader.ReadString('\n')
	if mass := cli.ParseAmount(massIn); mass > 0 {
		cfg.General.DefaultMassKg = mass
	}
	fmt.Println()

	// 3. Unit prices
	fmt.Println("  3. Gas price (so'm per m³)")
	fmt.Printf("     Current: %.0f\n", cfg.Prices.GasSomPerM3)
	fmt.Print("     > ")
	gasIn, _ := reader.ReadString('\n')
	if gas := cli.ParseAmount(gasIn); gas > 0 {
		cfg.Prices.GasSomPerM3 = gas
	}
	fmt.Println()

	fmt.Println("  4. Electricity price (so'm per kWh)")
	fmt.Printf("     Current: %.0f\n", cfg.Prices.ElectricitySomPerKWh)
	fmt.Print("     > ")
	powerIn, _ := reader.ReadString('\n')
	if power := cli.ParseAmount(powerIn); power > 0 {
		cfg.Prices.ElectricitySomPerKWh = power
	}
	fmt.Println()

	// 5. Theme
	fmt.Println("  5. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `biogaz setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
