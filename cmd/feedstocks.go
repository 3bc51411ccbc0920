package cmd

import (
	"fmt"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/config"

	"github.com/spf13/cobra"
)

var feedstocksCmd = &cobra.Command{
	Use:   "feedstocks",
	Short: "List the feedstock catalog and yield factors",
	RunE:  runFeedstocks,
}

func init() {
	rootCmd.AddCommand(feedstocksCmd)
}

func runFeedstocks(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("FEEDSTOCK CATALOG"))
	fmt.Println()

	maxYield := 0.0
	for _, p := range config.Catalog {
		if p.YieldM3PerKg > maxYield {
			maxYield = p.YieldM3PerKg
		}
	}

	rows := make([][]string, 0, len(config.Catalog))
	for _, p := range config.Catalog {
		rows = append(rows, []string{
			p.Key,
			p.Label,
			cli.FormatYield(p.YieldM3PerKg),
			cli.RenderYieldBar(p.YieldM3PerKg, maxYield, 18),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Key", "Feedstock", "Yield", ""},
		Rows:    rows,
	}))

	fmt.Println(cli.Muted("  Pass a key with -f, e.g. `biogaz estimate -f food -m 400`."))
	fmt.Println(cli.Muted("  Unknown keys fall back to " + config.Catalog[0].Label + "."))

	return nil
}
