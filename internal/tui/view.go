package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stampcalc/stampcalc/internal/compare"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/output"
	"github.com/stampcalc/stampcalc/internal/tui/components"
	"github.com/stampcalc/stampcalc/internal/tui/tuistyles"
)

// View renders the current state of the application.
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneWizard:
		content = m.renderWizard()
	case SceneResults:
		content = m.renderResults()
	case SceneCompare:
		content = m.renderCompare()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title bar and status bar.
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("Upfront Purchase Cost Estimator")

	breadcrumb := m.currentScene.String()
	if m.profile.Property.Region.Valid() {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.profile.Property.Region.FullName())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		tuistyles.SubtitleStyle.Render(breadcrumb),
	)
}

func (m Model) renderStatusBar() string {
	var shortcuts []string
	if m.currentScene == SceneWizard {
		shortcuts = []string{
			formatShortcut("enter", "answer"),
			formatShortcut("ctrl+c", "quit"),
		}
	} else {
		shortcuts = []string{
			formatShortcut("w", "wizard"),
			formatShortcut("r", "results"),
			formatShortcut("c", "compare"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		}
	}
	return tuistyles.StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " | "))
}

func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderError() string {
	msg := "An error occurred"
	if m.err != nil {
		msg = m.err.Error()
	}
	return tuistyles.PanelStyle.Render(
		tuistyles.ErrorStyle.Render("Error: "+msg) + "\n\nPress esc to continue.",
	)
}

// renderWizard shows the current question next to a live cost summary that
// updates as answers come in.
func (m Model) renderWizard() string {
	var sb strings.Builder

	sb.WriteString(components.NewProgressBar(m.report).Render())
	sb.WriteString("\n\n")

	field, ok := m.currentField()
	if !ok {
		sb.WriteString(tuistyles.QuestionStyle.Render("All questions answered."))
		sb.WriteString("\n")
		sb.WriteString(tuistyles.HintStyle.Render("Press enter to see the results."))
	} else {
		q := questionFor(field.Key)
		sb.WriteString(tuistyles.SectionStyle.Render(sectionTitle(field.Section)))
		sb.WriteString("\n")
		sb.WriteString(tuistyles.QuestionStyle.Render(q.Prompt))
		sb.WriteString("\n")
		if q.Hint != "" {
			sb.WriteString(tuistyles.HintStyle.Render(q.Hint))
			sb.WriteString("\n")
		}
		sb.WriteString(m.input.View())
		if m.inputErr != nil {
			sb.WriteString("\n")
			sb.WriteString(tuistyles.ErrorStyle.Render(m.inputErr.Error()))
		}
	}

	left := tuistyles.PanelStyle.Render(sb.String())
	if m.breakdown == nil {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderLivePanel())
}

func sectionTitle(id domain.SectionID) string {
	switch id {
	case domain.SectionProperty:
		return "About the property"
	case domain.SectionBuyer:
		return "About you"
	case domain.SectionLoan:
		return "Your loan"
	case domain.SectionSeller:
		return "From the seller"
	}
	return string(id)
}

// renderLivePanel is the compact running estimate shown while the wizard is
// still in progress.
func (m Model) renderLivePanel() string {
	cb := m.breakdown
	var sb strings.Builder

	sb.WriteString(tuistyles.SectionStyle.Render("Estimate so far"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Transfer duty   %s\n", output.FormatCurrency(cb.BaseDuty))

	for _, c := range cb.Concessions {
		switch {
		case c.Applied:
			sb.WriteString(tuistyles.AppliedStyle.Render(
				fmt.Sprintf("%s  -%s", c.Name, output.FormatCurrency(c.Amount))))
			sb.WriteString("\n")
		case c.Pending:
			sb.WriteString(tuistyles.SupersededStyle.Render(
				fmt.Sprintf("%s  awaiting seller", c.Name)))
			sb.WriteString("\n")
		case c.Superseded:
			sb.WriteString(tuistyles.SupersededStyle.Render(
				fmt.Sprintf("%s  superseded", c.Name)))
			sb.WriteString("\n")
		}
	}
	for _, g := range cb.Grants {
		switch {
		case g.Applied:
			sb.WriteString(tuistyles.AppliedStyle.Render(
				fmt.Sprintf("%s  -%s", g.Name, output.FormatCurrency(g.Amount))))
			sb.WriteString("\n")
		case g.Superseded:
			sb.WriteString(tuistyles.SupersededStyle.Render(
				fmt.Sprintf("%s  superseded", g.Name)))
			sb.WriteString("\n")
		}
	}

	fmt.Fprintf(&sb, "Net duty        %s\n", output.FormatCurrency(cb.NetDuty))
	fmt.Fprintf(&sb, "Total so far    %s\n", output.FormatCurrency(cb.Total))

	return tuistyles.PanelStyle.Render(sb.String())
}

// renderResults shows the full breakdown through the same formatter the CLI
// uses, so results never drift between the two surfaces.
func (m Model) renderResults() string {
	if m.breakdown == nil {
		return tuistyles.PanelStyle.Render(
			tuistyles.HintStyle.Render("No results yet. Press w to start the wizard."),
		)
	}
	formatter := &output.ConsoleFormatter{}
	report, err := formatter.Format(m.breakdown)
	if err != nil {
		return tuistyles.ErrorStyle.Render(err.Error())
	}
	return report
}

func (m Model) renderCompare() string {
	if m.compareSet == nil {
		return tuistyles.PanelStyle.Render(
			tuistyles.HintStyle.Render("Nothing to compare yet. Press w to start the wizard."),
		)
	}
	tf := &compare.TableFormatter{}
	return tf.Format(m.compareSet)
}

func (m Model) renderHelp() string {
	helpText := `Upfront Purchase Cost Estimator

The wizard asks one question at a time. Only the questions your
answers make relevant are asked; the estimate on the right updates
as you go, and cost components only join the total once their
section is finished.

KEYBOARD SHORTCUTS
  enter     confirm the current answer
  esc       back to the wizard (or dismiss an error)
  w         wizard
  r         results
  c         compare all regions
  ?         this help
  q/ctrl+c  quit (q only outside the wizard)`

	return tuistyles.PanelStyle.Render(helpText)
}
