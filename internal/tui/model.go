// Package tui is the interactive wizard: it walks the user through the
// required questions one at a time, recomputing the cost breakdown and the
// completion report after every confirmed answer.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stampcalc/stampcalc/internal/branching"
	"github.com/stampcalc/stampcalc/internal/calculation"
	"github.com/stampcalc/stampcalc/internal/compare"
	"github.com/stampcalc/stampcalc/internal/config"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/progress"
)

// Model represents the entire application state.
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Optional saved session to resume from
	snapshotPath string

	// Calculation engines
	engine        *calculation.Engine
	compareEngine *compare.Engine

	// Wizard state. The profile and position are replaced wholesale on
	// every confirmed answer; the report and breakdown are derived from
	// them and recomputed after each mutation.
	profile  domain.Profile
	position domain.WizardPosition

	report     progress.Report
	breakdown  *domain.CostBreakdown
	compareSet *compare.ComparisonSet

	// Answer entry
	input    textinput.Model
	inputErr error

	// Error state
	err error
}

// NewModel creates a new application model. An empty snapshotPath starts a
// fresh session.
func NewModel(snapshotPath string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	engine := calculation.NewEngine()

	m := Model{
		currentScene:  SceneWizard,
		snapshotPath:  snapshotPath,
		engine:        engine,
		compareEngine: compare.NewEngine(engine),
		profile:       domain.Profile{},
		position:      domain.NewWizardPosition(),
		input:         ti,
		width:         80,
		height:        24,
	}
	m.recalculate()
	return m
}

// Init initializes the model (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	if m.snapshotPath != "" {
		return tea.Batch(loadSnapshotCmd(m.snapshotPath), textinput.Blink)
	}
	return textinput.Blink
}

// loadSnapshotCmd returns a command that loads a saved session snapshot.
func loadSnapshotCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		snapshot, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SnapshotLoadedMsg{Snapshot: snapshot}
	}
}

// recalculate refreshes the derived state after a profile or position
// change. A breakdown is only possible once the region and price are in;
// until then the live panel stays empty and that is not an error.
func (m *Model) recalculate() {
	m.report = progress.Track(m.profile, m.position)

	cb, err := m.engine.Breakdown(m.profile, m.position)
	if err != nil {
		m.breakdown = nil
		return
	}
	m.breakdown = cb
}

// currentField returns the first outstanding question on the required path.
func (m *Model) currentField() (branching.FieldRef, bool) {
	for _, f := range m.report.Required {
		if !progress.Answered(f, m.position) {
			return f, true
		}
	}
	return branching.FieldRef{}, false
}

// wizardDone reports whether every required question has been answered.
func (m *Model) wizardDone() bool {
	_, remaining := m.currentField()
	return !remaining && m.report.Total > 0
}
