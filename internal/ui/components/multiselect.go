package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
)

// PickItem is one selectable row in a MultiSelect.
type PickItem struct {
	Key         string
	Description string
}

// MultiSelect is a full-screen checklist picker. It runs as a bubbletea
// program and reports the chosen keys after enter, or nothing after escape.
type MultiSelect struct {
	title    string
	theme    ui.Theme
	items    []PickItem
	selected map[int]bool
	cursor   int
	done     bool
	canceled bool
}

// NewMultiSelect creates a picker over the given items.
func NewMultiSelect(title string, theme ui.Theme, items []PickItem) *MultiSelect {
	return &MultiSelect{
		title:    title,
		theme:    theme,
		items:    items,
		selected: make(map[int]bool),
	}
}

// Init implements tea.Model.
func (m *MultiSelect) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *MultiSelect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c", "q":
		m.canceled = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *MultiSelect) View() string {
	if m.done || m.canceled {
		return ""
	}

	lines := []string{m.theme.Title().Render(m.title), ""}
	for i, item := range m.items {
		box := NewCheckbox(item.Key).WithChecked(m.selected[i])
		if i == m.cursor {
			box.Focus()
		}

		line := box.Render(m.theme)
		if item.Description != "" {
			line += "  " + m.theme.Subtle().Render(item.Description)
		}
		if i == m.cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", m.theme.Subtle().Render("space toggle · enter confirm · esc cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Canceled reports whether the picker was dismissed without confirming.
func (m *MultiSelect) Canceled() bool { return m.canceled }

// Selected returns the confirmed keys in list order.
func (m *MultiSelect) Selected() []string {
	if m.canceled {
		return nil
	}
	var keys []string
	for i, item := range m.items {
		if m.selected[i] {
			keys = append(keys, item.Key)
		}
	}
	return keys
}
