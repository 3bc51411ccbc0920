package tui

import (
	"fmt"
	"strings"

	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/config"
	"github.com/biogazpro/biogaz/internal/tui/components"
	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	calcFieldFeedstock = iota
	calcFieldMass
	calcFieldGasPrice
	calcFieldPowerPrice
	calcFieldCount // sentinel
)

// calcState tracks the calculator tab state.
type calcState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func newCalcInput(value, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 16
	ti.Placeholder = placeholder
	ti.SetValue(value)
	return ti
}

func (a App) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.calc.cursor < calcFieldCount-1 {
			a.calc.cursor++
		}
		return a, nil
	case "k", "up":
		if a.calc.cursor > 0 {
			a.calc.cursor--
		}
		return a, nil
	case "h":
		if a.calc.cursor == calcFieldFeedstock {
			a.cycleFeedstock(-1)
		}
		return a, nil
	case "l", " ":
		if a.calc.cursor == calcFieldFeedstock {
			a.cycleFeedstock(1)
		}
		return a, nil
	case "enter":
		if a.calc.cursor == calcFieldFeedstock {
			a.cycleFeedstock(1)
			return a, nil
		}
		return a.calcStartEdit()
	}
	return a, nil
}

// cycleFeedstock steps through the catalog, recomputing immediately.
func (a *App) cycleFeedstock(dir int) {
	keys := config.FeedstockKeys()
	current := 0
	resolved := config.LookupFeedstock(a.input.FeedstockKey).Key
	for i, k := range keys {
		if k == resolved {
			current = i
			break
		}
	}
	a.input.FeedstockKey = keys[(current+dir+len(keys))%len(keys)]
	a.recompute()
}

func (a App) calcStartEdit() (tea.Model, tea.Cmd) {
	a.calc.editing = true

	var ti textinput.Model
	switch a.calc.cursor {
	case calcFieldMass:
		ti = newCalcInput(cli.FormatFloat(a.input.DailyMassKg), "600")
	case calcFieldGasPrice:
		ti = newCalcInput(cli.FormatFloat(a.input.GasUnitPrice), "1800")
	case calcFieldPowerPrice:
		ti = newCalcInput(cli.FormatFloat(a.input.ElectricityUnitPrice), "450")
	}

	ti.Focus()
	a.calc.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateCalcInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Free-form input coerces, never rejects
		value := cli.ParseAmount(a.calc.input.Value())
		switch a.calc.cursor {
		case calcFieldMass:
			a.input.DailyMassKg = value
		case calcFieldGasPrice:
			a.input.GasUnitPrice = value
		case calcFieldPowerPrice:
			a.input.ElectricityUnitPrice = value
		}
		a.calc.editing = false
		a.recompute()
		return a, nil
	case "esc":
		a.calc.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.calc.input, cmd = a.calc.input.Update(msg)
	return a, cmd
}

func (a App) renderCalculatorTab(cw int) string {
	t := theme.Active
	res := a.result
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	profile := config.LookupFeedstock(a.input.FeedstockKey)

	fields := []struct {
		label string
		value string
	}{
		{"Feedstock", profile.Label + "  " + hintStyle.Render("(h/l to cycle)")},
		{"Daily mass", cli.FormatMass(a.input.DailyMassKg)},
		{"Gas price", cli.FormatFloat(a.input.GasUnitPrice) + " so'm/m³"},
		{"Electricity price", cli.FormatFloat(a.input.ElectricityUnitPrice) + " so'm/kWh"},
	}

	var form strings.Builder
	for i, f := range fields {
		marker := "  "
		style := valueStyle
		if i == a.calc.cursor {
			marker = cursorStyle.Render("> ")
			style = cursorStyle
		}

		value := f.value
		if a.calc.editing && i == a.calc.cursor {
			value = a.calc.input.View()
		}

		form.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			labelStyle.Render(fmt.Sprintf("%-18s", f.label)),
			style.Render(value)))
	}
	form.WriteString(hintStyle.Render("  j/k move · enter edit · c copy summary"))

	b.WriteString(components.ContentCard("Plant parameters", form.String(), cw))
	b.WriteString("\n")

	// Daily production cards
	production := []struct{ Label, Value, Note string }{
		{"Biogas", cli.FormatVolume(res.BiogasVolumePerDay), "per day"},
		{"Electricity", cli.FormatEnergy(res.ElectricEnergyPerDay), "per day"},
		{"Heat", cli.FormatEnergy(res.ThermalEnergyPerDay), "per day"},
		{"CO2 avoided", cli.FormatCO2(res.CO2ReductionPerDay), "per day"},
	}
	b.WriteString(components.MetricCardRow(production, cw))
	b.WriteString("\n")

	// Money cards
	money := []struct{ Label, Value, Note string }{
		{"Monthly savings", cli.FormatSomShort(res.MonthlySavings) + " so'm", cli.FormatSom(res.MonthlySavings)},
		{"Capital cost", cli.FormatSomShort(res.CapitalCost) + " so'm", cli.FormatSom(res.CapitalCost)},
		{"Payback", cli.FormatPayback(res.PaybackMonths), paybackNote(res.PaybackMonths)},
	}
	b.WriteString(components.MetricCardRow(money, cw))

	return b.String()
}

func paybackNote(months *float64) string {
	if months == nil {
		return "no payback at current prices"
	}
	if *months <= 12 {
		return "within the first year"
	}
	years := *months / 12
	return fmt.Sprintf("≈ %.1f years", years)
}
