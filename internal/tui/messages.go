package tui

import (
	"github.com/stampcalc/stampcalc/internal/config"
)

// Scene represents different screens in the TUI.
type Scene int

const (
	SceneWizard Scene = iota
	SceneResults
	SceneCompare
	SceneHelp
)

// String returns a human-readable name for a scene.
func (s Scene) String() string {
	switch s {
	case SceneWizard:
		return "Wizard"
	case SceneResults:
		return "Results"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle.

// NavigateMsg switches to a different scene.
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}

// SnapshotLoadedMsg signals a saved session snapshot has been loaded.
type SnapshotLoadedMsg struct {
	Snapshot *config.Snapshot
}
