package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunBrowse starts the interactive inventory browser, initially filtered to
// the given room id.
func RunBrowse(roomID uint) error {
	model, err := NewBrowseModel(roomID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
