// Package tuistyles holds the shared color palette and styles for the
// wizard TUI.
package tuistyles

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary    = lipgloss.Color("#7C3AED")
	ColorSuccess    = lipgloss.Color("#10B981")
	ColorDanger     = lipgloss.Color("#EF4444")
	ColorWarning    = lipgloss.Color("#F59E0B")
	ColorMuted      = lipgloss.Color("#6B7280")
	ColorBorder     = lipgloss.Color("#374151")
	ColorForeground = lipgloss.Color("#E5E7EB")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground)

	QuestionStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	AppliedStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	SupersededStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	IneligibleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)
