package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := newModel([]string{"one", "two", "Exit"})

	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if m.chosen != -1 {
		t.Errorf("chosen = %d, want -1", m.chosen)
	}
	if len(m.choices) != 3 {
		t.Errorf("choices = %d, want 3", len(m.choices))
	}
}

func TestModel_Update_CursorMovement(t *testing.T) {
	m := newModel([]string{"one", "two", "three"})

	next, _ := m.Update(keyMsg("j"))
	m = next.(model)
	if m.cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("down"))
	m = next.(model)
	next, _ = m.Update(keyMsg("down"))
	m = next.(model)
	if m.cursor != 2 {
		t.Errorf("cursor must stop at last choice, got %d", m.cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(model)
	if m.cursor != 1 {
		t.Errorf("cursor after k = %d, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(model)
	next, _ = m.Update(keyMsg("up"))
	m = next.(model)
	if m.cursor != 0 {
		t.Errorf("cursor must stop at first choice, got %d", m.cursor)
	}
}

func TestModel_Update_EnterSelects(t *testing.T) {
	m := newModel([]string{"one", "two"})

	next, _ := m.Update(keyMsg("j"))
	m = next.(model)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(model)

	if !m.done || m.cancelled {
		t.Errorf("done = %v, cancelled = %v", m.done, m.cancelled)
	}
	if m.chosen != 1 {
		t.Errorf("chosen = %d, want 1", m.chosen)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModel_Update_Cancel(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newModel([]string{"one", "two"})

			next, cmd := m.Update(keyMsg(k))
			m = next.(model)

			if !m.cancelled {
				t.Errorf("%s must cancel", k)
			}
			if m.chosen != -1 {
				t.Errorf("cancel must not choose, chosen = %d", m.chosen)
			}
			if cmd == nil {
				t.Error("expected quit command")
			}
		})
	}
}

func TestModel_View(t *testing.T) {
	m := newModel([]string{"Show uptime", "Exit"})

	view := m.View()

	if !strings.Contains(view, "Show uptime") || !strings.Contains(view, "Exit") {
		t.Errorf("view missing choices:\n%s", view)
	}
	if !strings.Contains(view, ">") {
		t.Errorf("view missing cursor:\n%s", view)
	}
}

func TestModel_View_EmptyWhenDone(t *testing.T) {
	m := newModel([]string{"one"})
	m.done = true

	if m.View() != "" {
		t.Error("done model must render nothing")
	}
}
