// Package export builds the plain-text estimate summary and puts it on
// the system clipboard.
package export

import (
	"fmt"
	"strings"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/model"

	"github.com/atotto/clipboard"
)

// Summary renders the fixed-format multi-line export text for one
// estimation result. The layout is stable so the output can be pasted
// into messages and spreadsheets as-is.
func Summary(res model.EstimationResult) string {
	var b strings.Builder

	b.WriteString("Biogas plant estimate\n")
	fmt.Fprintf(&b, "Feedstock:       %s\n", res.FeedstockLabel)
	fmt.Fprintf(&b, "Biogas output:   %s/day\n", cli.FormatVolume(res.BiogasVolumePerDay))
	fmt.Fprintf(&b, "Electric output: %s/day\n", cli.FormatEnergy(res.ElectricEnergyPerDay))
	fmt.Fprintf(&b, "Monthly savings: %s\n", cli.FormatSom(res.MonthlySavings))
	if res.PaybackMonths != nil {
		fmt.Fprintf(&b, "Payback period:  %.1f months\n", *res.PaybackMonths)
	} else {
		b.WriteString("Payback period:  no payback at current prices\n")
	}

	return b.String()
}

// CopyToClipboard places the summary for res on the system clipboard.
func CopyToClipboard(res model.EstimationResult) error {
	if err := clipboard.WriteAll(Summary(res)); err != nil {
		return fmt.Errorf("copying summary: %w", err)
	}
	return nil
}
