package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stampcalc/stampcalc/internal/tui"
)

func main() {
	// An optional snapshot argument resumes a saved session; without one
	// the wizard starts fresh.
	snapshotPath := ""
	if len(os.Args) > 1 {
		snapshotPath = os.Args[1]
		if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
			fmt.Printf("Error: snapshot file not found: %s\n", snapshotPath)
			os.Exit(1)
		}
	}

	model := tui.NewModel(snapshotPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
