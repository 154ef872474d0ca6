package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/progress"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		if msg.Scene == SceneCompare {
			m.runCompare()
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case SnapshotLoadedMsg:
		m.profile = msg.Snapshot.Profile
		m.position = msg.Snapshot.Position
		m.recalculate()
		if m.wizardDone() {
			m.currentScene = SceneResults
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input. While the wizard scene is
// collecting an answer almost every key belongs to the text input, so only
// ctrl+c, esc and enter are intercepted there; the letter shortcuts apply
// everywhere else.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.currentScene != SceneWizard {
			return m, func() tea.Msg {
				return NavigateMsg{Scene: SceneWizard}
			}
		}
		return m, nil
	}

	if m.currentScene == SceneWizard {
		if msg.String() == "enter" {
			return m.submitAnswer()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "w":
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneWizard} }
	case "r":
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneResults} }
	case "c":
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneCompare} }
	case "?":
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneHelp} }
	}

	return m, nil
}

// submitAnswer applies the typed answer to the current question and moves
// the wizard forward.
func (m Model) submitAnswer() (tea.Model, tea.Cmd) {
	field, ok := m.currentField()
	if !ok {
		m.previousScene = m.currentScene
		m.currentScene = SceneResults
		return m, nil
	}

	if err := m.applyAnswer(field, m.input.Value()); err != nil {
		m.inputErr = err
		return m, nil
	}
	m.inputErr = nil
	m.input.SetValue("")

	// Answered means strictly past the step that asked, so move the section
	// pointer one beyond the field just confirmed.
	m.position = m.position.WithSection(field.Section, domain.SectionState{
		Status: domain.SectionInProgress,
		Step:   field.Step + 1,
	})
	m.completeSections()
	m.recalculate()

	if m.wizardDone() {
		m.previousScene = m.currentScene
		m.currentScene = SceneResults
	}
	return m, nil
}

// completeSections promotes any in-progress section whose questions are all
// answered. Completion is what releases the gated cost components, so it
// must be derived here rather than assumed when the step counter runs out:
// a confirmed answer can also change which later questions exist at all.
func (m *Model) completeSections() {
	m.report = progress.Track(m.profile, m.position)
	for _, id := range domain.AllSections() {
		state := m.position.State(id)
		if state.Status != domain.SectionInProgress {
			continue
		}
		if m.sectionOutstanding(id) == 0 {
			m.position = m.position.WithSection(id, domain.SectionState{
				Status: domain.SectionComplete,
				Step:   state.Step,
			})
		}
	}
}

func (m *Model) sectionOutstanding(id domain.SectionID) int {
	outstanding := 0
	for _, f := range m.report.Required {
		if f.Section != id {
			continue
		}
		if !m.position.PastStep(f.Section, f.Step) {
			outstanding++
		}
	}
	return outstanding
}

// runCompare recomputes the cross-region comparison for the current
// profile. Comparison needs at least a valid price, so a nil set just means
// there is nothing to compare yet.
func (m *Model) runCompare() {
	set, err := m.compareEngine.Compare(m.profile, m.position)
	if err != nil {
		m.compareSet = nil
		return
	}
	m.compareSet = set
}
