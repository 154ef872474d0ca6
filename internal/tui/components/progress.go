// Package components holds reusable TUI widgets.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stampcalc/stampcalc/internal/progress"
	"github.com/stampcalc/stampcalc/internal/tui/tuistyles"
)

// ProgressBar displays wizard completion.
type ProgressBar struct {
	Percent  int
	Answered int
	Total    int
	Width    int
	Label    string
}

// NewProgressBar builds a bar from a requirement tracker report.
func NewProgressBar(report progress.Report) *ProgressBar {
	return &ProgressBar{
		Percent:  report.Percent,
		Answered: report.Answered,
		Total:    report.Total,
		Width:    40,
		Label:    "Questions answered",
	}
}

// WithWidth sets the bar width.
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Render returns the styled progress bar.
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(p.Label))
		content.WriteString(" ")
	}

	filled := p.Width * p.Percent / 100
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("]")

	percentStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)
	content.WriteString(" " + percentStyle.Render(fmt.Sprintf("%d%%", p.Percent)))

	countStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" " + countStyle.Render(fmt.Sprintf("%d/%d", p.Answered, p.Total)))

	return content.String()
}
