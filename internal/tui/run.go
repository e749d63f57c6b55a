package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/storycards/internal/narrative"
)

// Run starts the session on the alternate screen and blocks until quit.
func Run(ctrl *narrative.Controller, opts Options) error {
	p := tea.NewProgram(New(ctrl, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
