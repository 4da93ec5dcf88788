package terminal

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/planmorph/internal/plot"
)

// Viewer shows a figure in the terminal's alternate screen.
type Viewer struct {
	// Options are passed to tea.NewProgram after the alt-screen option.
	Options []tea.ProgramOption
}

// Show runs the program and blocks until the user closes it.
func (v Viewer) Show(fig plot.Figure) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, v.Options...)
	p := tea.NewProgram(NewModel(fig), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal: run viewer: %w", err)
	}
	return nil
}
