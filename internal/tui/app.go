// Package tui provides the interactive Bubble Tea calculator for biogaz.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/biogazpro/biogaz/internal/config"
	"github.com/biogazpro/biogaz/internal/content"
	"github.com/biogazpro/biogaz/internal/estimate"
	"github.com/biogazpro/biogaz/internal/export"
	"github.com/biogazpro/biogaz/internal/model"
	"github.com/biogazpro/biogaz/internal/tui/components"
	"github.com/biogazpro/biogaz/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// clearFlashMsg expires a status-bar notification.
type clearFlashMsg struct {
	seq int
}

// App is the root Bubble Tea model.
type App struct {
	// Current input and its memoized derivation. The result is a pure
	// function of the input, recomputed synchronously on change.
	input     model.EstimationInput
	lastInput model.EstimationInput
	computed  bool
	result    model.EstimationResult
	points    []model.CashflowPoint

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Transient status-bar notification
	flash    string
	flashSeq int

	// Per-tab state
	calc     calcState
	faq      faqState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	flashDuration    = 2 * time.Second
)

// NewApp creates the TUI app model with the given starting input.
func NewApp(in model.EstimationInput) App {
	a := App{
		input:     in,
		needSetup: !config.Exists(),
	}

	if a.needSetup {
		a.setupVals = newSetupValues(in)
		a.setupForm = newSetupForm(&a.setupVals)
	}

	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// recompute refreshes the derived result, skipping work when the input
// tuple is unchanged.
func (a *App) recompute() {
	if a.computed && a.input == a.lastInput {
		return
	}
	a.result = estimate.Compute(a.input)
	a.points = estimate.Project(a.result.CapitalCost, a.result.MonthlySavings)
	a.lastInput = a.input
	a.computed = true
}

func (a *App) setFlash(msg string) tea.Cmd {
	a.flash = msg
	a.flashSeq++
	seq := a.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case clearFlashMsg:
		if msg.seq == a.flashSeq {
			a.flash = ""
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Active text inputs intercept all keys
		if a.activeTab == tabCalculator && a.calc.editing {
			return a.updateCalcInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "c":
			// Copy the current estimate summary, landing-page style toast
			if err := export.CopyToClipboard(a.result); err != nil {
				return a, a.setFlash("Clipboard unavailable")
			}
			return a, a.setFlash("Copied to clipboard")
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabCalculator:
			return a.updateCalculator(msg)
		case tabFAQ:
			return a.updateFAQ(msg)
		case tabSettings:
			return a.updateSettings(msg)
		}

		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetupConfig()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  biogaz needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	heroStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(logoStyle.Render("◈ biogaz"))
	b.WriteString(heroStyle.Render(" · " + content.Hero))
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabCalculator:
		b.WriteString(a.renderCalculatorTab(cw))
	case tabCashflow:
		b.WriteString(a.renderCashflowTab(cw))
	case tabFeedstocks:
		b.WriteString(a.renderFeedstocksTab(cw))
	case tabFAQ:
		b.WriteString(a.renderFAQTab(cw))
	case tabSettings:
		b.WriteString(a.renderSettingsTab(cw))
	}

	body := b.String()

	// Pin the status bar to the bottom of the terminal.
	lines := strings.Count(body, "\n") + 1
	pad := a.height - lines - 1
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	body += "\n" + components.RenderStatusBar(a.width, a.flash)

	return body
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"1-5", "switch tab"},
		{"tab / shift+tab", "next / previous tab"},
		{"j / k", "move cursor"},
		{"enter", "edit field, toggle FAQ entry"},
		{"h / l", "cycle feedstock on the calculator"},
		{"c", "copy the estimate summary to the clipboard"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-16s", r.key)),
			descStyle.Render(r.desc)))
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("  Press any key to close."))

	return b.String()
}

// Tab indices, matching components.Tabs order.
const (
	tabCalculator = iota
	tabCashflow
	tabFeedstocks
	tabFAQ
	tabSettings
)
