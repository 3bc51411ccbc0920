package cmd

import (
	"fmt"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/estimate"

	"github.com/spf13/cobra"
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "12-month cumulative cashflow projection",
	RunE:  runCashflow,
}

func init() {
	rootCmd.AddCommand(cashflowCmd)
}

func runCashflow(_ *cobra.Command, _ []string) error {
	res := estimate.Compute(buildInput())
	points := estimate.Project(res.CapitalCost, res.MonthlySavings)

	if flagQuiet {
		for _, p := range points {
			fmt.Printf("month %d: %s\n", p.Month, cli.FormatSom(p.Cumulative))
		}
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FIRST YEAR CASHFLOW"))
	fmt.Println()

	fmt.Printf("  Capital outlay %s, savings %s/month\n",
		cli.FormatSom(res.CapitalCost), cli.FormatSom(res.MonthlySavings))

	values := make([]float64, len(points))
	rows := make([][]string, 0, len(points))
	for i, p := range points {
		values[i] = p.Cumulative

		balance := cli.FormatSom(p.Cumulative)
		if p.Cumulative >= 0 {
			balance = cli.Positive(balance)
		} else {
			balance = cli.Negative(balance)
		}
		rows = append(rows, []string{
			fmt.Sprintf("Month %d", p.Month),
			balance,
		})
	}

	fmt.Printf("  %s\n\n", cli.RenderSignedSparkline(values))

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Cumulative balance"},
		Rows:    rows,
	}))

	if be := estimate.BreakEvenMonth(points); be > 0 {
		fmt.Println(cli.Positive(fmt.Sprintf("  Break-even in month %d.", be)))
	} else if res.PaybackMonths != nil {
		fmt.Println(cli.Muted(fmt.Sprintf("  Break-even after the first year (~%.1f months).", *res.PaybackMonths)))
	} else {
		fmt.Println(cli.Muted("  No payback at current prices."))
	}

	return nil
}
