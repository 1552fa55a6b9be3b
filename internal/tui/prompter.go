package tui

import (
	"github.com/menush/menush/internal/terminal"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompter is the full-screen front end. Selection runs through Bubble
// Tea; argument entry and the post-command pause reuse the plain
// prompter, since both happen outside the alternate screen.
type Prompter struct {
	*terminal.Prompter
}

// NewPrompter creates a TUI prompter over the plain one.
func NewPrompter(plain *terminal.Prompter) *Prompter {
	return &Prompter{Prompter: plain}
}

// Select presents the menu full-screen and returns the chosen index, or
// terminal.ErrCancelled when the user quits or interrupts.
func (p *Prompter) Select(choices []string) (int, error) {
	prog := tea.NewProgram(newModel(choices), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(model)
	if !ok || m.cancelled || m.chosen < 0 {
		return 0, terminal.ErrCancelled
	}
	return m.chosen, nil
}
