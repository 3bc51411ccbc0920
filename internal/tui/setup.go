package tui

import (
	"github.com/biogazpro/biogaz/internal/cli"
	"github.com/biogazpro/biogaz/internal/config"
	"github.com/biogazpro/biogaz/internal/model"
	"github.com/biogazpro/biogaz/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run huh form.
type setupValues struct {
	feedstock  string
	mass       string
	gasPrice   string
	powerPrice string
	themeName  string
}

func newSetupValues(in model.EstimationInput) setupValues {
	return setupValues{
		feedstock:  config.LookupFeedstock(in.FeedstockKey).Key,
		mass:       cli.FormatFloat(in.DailyMassKg),
		gasPrice:   cli.FormatFloat(in.GasUnitPrice),
		powerPrice: cli.FormatFloat(in.ElectricityUnitPrice),
		themeName:  theme.Active.Name,
	}
}

func newSetupForm(vals *setupValues) *huh.Form {
	feedstockOpts := make([]huh.Option[string], len(config.Catalog))
	for i, p := range config.Catalog {
		feedstockOpts[i] = huh.NewOption(p.Label, p.Key)
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to biogaz").
				Description("A few defaults and you're set. Everything can be changed later on the Settings tab."),
			huh.NewSelect[string]().
				Title("Default feedstock").
				Options(feedstockOpts...).
				Value(&vals.feedstock),
			huh.NewInput().
				Title("Daily feedstock mass (kg)").
				Placeholder("500").
				Value(&vals.mass),
			huh.NewInput().
				Title("Gas price (so'm per m³)").
				Placeholder("1800").
				Value(&vals.gasPrice),
			huh.NewInput().
				Title("Electricity price (so'm per kWh)").
				Placeholder("450").
				Value(&vals.powerPrice),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.themeName),
		),
	)
}

// applySetupConfig persists the form values and feeds them into the
// current estimation input. Save errors are surfaced as a flash only;
// the session continues with the chosen values either way.
func (a *App) applySetupConfig() {
	cfg, _ := config.Load()

	cfg.General.DefaultFeedstock = a.setupVals.feedstock
	if mass := cli.ParseAmount(a.setupVals.mass); mass > 0 {
		cfg.General.DefaultMassKg = mass
	}
	if gas := cli.ParseAmount(a.setupVals.gasPrice); gas > 0 {
		cfg.Prices.GasSomPerM3 = gas
	}
	if power := cli.ParseAmount(a.setupVals.powerPrice); power > 0 {
		cfg.Prices.ElectricitySomPerKWh = power
	}
	cfg.Appearance.Theme = a.setupVals.themeName
	theme.SetActive(cfg.Appearance.Theme)

	a.input = model.EstimationInput{
		FeedstockKey:         cfg.General.DefaultFeedstock,
		DailyMassKg:          cfg.General.DefaultMassKg,
		GasUnitPrice:         cfg.Prices.GasSomPerM3,
		ElectricityUnitPrice: cfg.Prices.ElectricitySomPerKWh,
	}

	if err := config.Save(cfg); err != nil {
		a.flash = "Could not save config"
	}
}
