package tui

import (
	"packy/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser. save is called after every mutation
// so the workspace file stays in sync with what is on screen.
func Run(s *store.Store, save func() error) error {
	m := newAppModel(s, save)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
