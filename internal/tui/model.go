package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// model is the Bubble Tea model for the menu selection screen.
type model struct {
	choices   []string
	cursor    int
	chosen    int
	done      bool
	cancelled bool
	width     int
	height    int
}

// newModel creates a menu model over the given choices, the synthetic
// Exit choice included.
func newModel(choices []string) model {
	return model{choices: choices, chosen: -1}
}

// Init initializes the model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}
