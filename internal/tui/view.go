package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleConfig defines visual styles.
type StyleConfig struct {
	TitleColor    lipgloss.Color
	SubtleColor   lipgloss.Color
	SelectedColor lipgloss.Color
	BorderColor   lipgloss.Color
}

// DefaultStyleConfig returns the default style configuration.
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{
		TitleColor:    lipgloss.Color("10"),  // Green
		SubtleColor:   lipgloss.Color("241"), // Grey
		SelectedColor: lipgloss.Color("12"),  // Blue
		BorderColor:   lipgloss.Color("8"),   // Dark grey
	}
}

var styles = DefaultStyleConfig()

// View renders the menu.
func (m model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(styles.TitleColor).
		Bold(true).
		Render("menush")
	border := lipgloss.NewStyle().
		Foreground(styles.BorderColor).
		Render(strings.Repeat("─", 40))

	b.WriteString(title + "\n" + border + "\n\n")

	selected := lipgloss.NewStyle().Foreground(styles.SelectedColor).Bold(true)
	for i, choice := range m.choices {
		cursor := "  "
		line := fmt.Sprintf("%d) %s", i+1, choice)
		if i == m.cursor {
			cursor = "> "
			line = selected.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	help := lipgloss.NewStyle().
		Foreground(styles.SubtleColor).
		Render("\n↑/k up · ↓/j down · enter select · q quit")
	b.WriteString(help + "\n")

	return b.String()
}
