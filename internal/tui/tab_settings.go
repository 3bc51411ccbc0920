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
	settingsFieldFeedstock = iota
	settingsFieldMass
	settingsFieldGasPrice
	settingsFieldPowerPrice
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" marker briefly
	saveErr error // non-nil if last save failed
}

func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil
	case "enter":
		return a.settingsStartEdit()
	}
	return a, nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 32

	switch a.settings.cursor {
	case settingsFieldFeedstock:
		ti.Placeholder = strings.Join(config.FeedstockKeys(), ", ")
		ti.SetValue(cfg.General.DefaultFeedstock)
	case settingsFieldMass:
		ti.Placeholder = "500"
		ti.SetValue(cli.FormatFloat(cfg.General.DefaultMassKg))
	case settingsFieldGasPrice:
		ti.Placeholder = "1800"
		ti.SetValue(cli.FormatFloat(cfg.Prices.GasSomPerM3))
	case settingsFieldPowerPrice:
		ti.Placeholder = "450"
		ti.SetValue(cli.FormatFloat(cfg.Prices.ElectricitySomPerKWh))
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldFeedstock:
		if config.IsFeedstockKey(val) {
			cfg.General.DefaultFeedstock = strings.ToLower(val)
		}
	case settingsFieldMass:
		if mass := cli.ParseAmount(val); mass > 0 {
			cfg.General.DefaultMassKg = mass
		}
	case settingsFieldGasPrice:
		if gas := cli.ParseAmount(val); gas > 0 {
			cfg.Prices.GasSomPerM3 = gas
		}
	case settingsFieldPowerPrice:
		if power := cli.ParseAmount(val); power > 0 {
			cfg.Prices.ElectricitySomPerKWh = power
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	}

	a.settings.saveErr = config.Save(cfg)
}

// loadConfigOrDefault loads config, falling back to defaults so the
// settings tab always has something to edit.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	fields := []struct {
		label string
		value string
	}{
		{"Default feedstock", cfg.General.DefaultFeedstock},
		{"Default mass", cli.FormatMass(cfg.General.DefaultMassKg) + "/day"},
		{"Gas price", cli.FormatFloat(cfg.Prices.GasSomPerM3) + " so'm/m³"},
		{"Electricity price", cli.FormatFloat(cfg.Prices.ElectricitySomPerKWh) + " so'm/kWh"},
		{"Theme", cfg.Appearance.Theme},
	}

	var form strings.Builder
	for i, f := range fields {
		marker := "  "
		style := valueStyle
		if i == a.settings.cursor {
			marker = cursorStyle.Render("> ")
			style = cursorStyle
		}

		value := f.value
		if a.settings.editing && i == a.settings.cursor {
			value = a.settings.input.View()
		}

		form.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			labelStyle.Render(fmt.Sprintf("%-18s", f.label)),
			style.Render(value)))
	}

	switch {
	case a.settings.saveErr != nil:
		form.WriteString(errStyle.Render(fmt.Sprintf("  Save failed: %v", a.settings.saveErr)))
	case a.settings.saved:
		form.WriteString(okStyle.Render("  Saved to " + config.Path()))
	default:
		form.WriteString(hintStyle.Render("  j/k move · enter edit · saved values become flag defaults"))
	}

	b.WriteString(components.ContentCard("Defaults", form.String(), cw))
	b.WriteString("\n")
	b.WriteString(" " + hintStyle.Render("These defaults seed new estimates; they never overwrite a running calculation."))

	return b.String()
}
