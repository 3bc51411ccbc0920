package tui

import (
	"strings"

	"github.com/biogazpro/biogaz/internal/content"
	"github.com/biogazpro/biogaz/internal/tui/components"
	"github.com/biogazpro/biogaz/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// faqState tracks the FAQ accordion: one cursor, any number of
// expanded entries.
type faqState struct {
	cursor   int
	expanded map[int]bool
}

func (a App) updateFAQ(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.faq.cursor < len(content.FAQs)-1 {
			a.faq.cursor++
		}
		return a, nil
	case "k", "up":
		if a.faq.cursor > 0 {
			a.faq.cursor--
		}
		return a, nil
	case "enter", " ":
		if a.faq.expanded == nil {
			a.faq.expanded = make(map[int]bool)
		}
		a.faq.expanded[a.faq.cursor] = !a.faq.expanded[a.faq.cursor]
		return a, nil
	case "g":
		a.faq.cursor = 0
		return a, nil
	case "G":
		a.faq.cursor = len(content.FAQs) - 1
		return a, nil
	}
	return a, nil
}

func (a App) renderFAQTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	questionStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	answerStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	chevronStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)
	answerWrap := lipgloss.NewStyle().Width(innerW - 4)

	var list strings.Builder
	for i, faq := range content.FAQs {
		chevron := "▸"
		if a.faq.expanded[i] {
			chevron = "▾"
		}

		q := questionStyle
		if i == a.faq.cursor {
			q = activeStyle
		}

		list.WriteString(chevronStyle.Render(chevron) + " " + q.Render(faq.Question) + "\n")
		if a.faq.expanded[i] {
			wrapped := answerWrap.Render(faq.Answer)
			for _, line := range strings.Split(wrapped, "\n") {
				list.WriteString("    " + answerStyle.Render(line) + "\n")
			}
		}
	}
	list.WriteString(hintStyle.Render("j/k move · enter expand"))

	b.WriteString(components.ContentCard("Frequently asked questions", list.String(), cw))
	b.WriteString("\n")
	b.WriteString(" " + hintStyle.Render(content.Contact))

	return b.String()
}
