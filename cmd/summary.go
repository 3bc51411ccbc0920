package cmd

import (
	"fmt"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/estimate"
	"github.com/biogazpro/biogaz/internal/export"

	"github.com/spf13/cobra"
)

var flagCopy bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Plain-text estimate summary for sharing",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Copy the summary to the clipboard")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	res := estimate.Compute(buildInput())

	fmt.Print(export.Summary(res))

	if flagCopy {
		if err := export.CopyToClipboard(res); err != nil {
			return err
		}
		fmt.Println(cli.Muted("Copied to clipboard."))
	}

	return nil
}
