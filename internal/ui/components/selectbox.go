package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
	"github.com/patchwork-ui/patchwork/internal/ui/state"
)

// SelectOption is one choice in a Select menu.
type SelectOption struct {
	Value string
	Label string
}

// Select is a single-choice dropdown. The value slice follows the
// controlled/uncontrolled pattern; the open flag and highlight cursor are
// always component-owned.
type Select struct {
	placeholder string
	options     []SelectOption
	value       *state.Value[string]
	open        bool
	highlight   int
}

// NewSelect creates a closed dropdown with no selection.
func NewSelect(placeholder string, options ...SelectOption) *Select {
	return &Select{
		placeholder: placeholder,
		options:     options,
		value:       state.Owned("", nil),
	}
}

// WithValue hands ownership of the selected value to the caller.
func (s *Select) WithValue(v *state.Value[string]) *Select {
	s.value = v
	return s
}

// Value returns the selected option value, or "" when nothing is selected.
func (s *Select) Value() string { return s.value.Get() }

// IsOpen reports whether the menu is showing.
func (s *Select) IsOpen() bool { return s.open }

// Open shows the menu with the highlight on the current selection.
func (s *Select) Open() {
	s.open = true
	s.highlight = 0
	for i, opt := range s.options {
		if opt.Value == s.value.Get() {
			s.highlight = i
			break
		}
	}
}

// Close hides the menu without changing the selection.
func (s *Select) Close() { s.open = false }

// MoveHighlight shifts the menu cursor, clamped to the option range.
func (s *Select) MoveHighlight(delta int) {
	if !s.open {
		return
	}
	s.highlight += delta
	if s.highlight < 0 {
		s.highlight = 0
	}
	if s.highlight >= len(s.options) {
		s.highlight = len(s.options) - 1
	}
}

// Choose commits the highlighted option and closes the menu.
func (s *Select) Choose() {
	if !s.open || len(s.options) == 0 {
		return
	}
	s.value.Set(s.options[s.highlight].Value)
	s.open = false
}

// MenuPlacement resolves where the open menu should render given the trigger
// rectangle and screen size. The menu opens below the trigger and flips above
// when it would overflow the bottom edge.
func (s *Select) MenuPlacement(trigger ui.Rect, screen ui.Size) ui.Placement {
	return ui.PlaceDropdown(trigger, s.menuSize(), screen)
}

func (s *Select) menuSize() ui.Size {
	width := 0
	for _, opt := range s.options {
		if len(opt.Label) > width {
			width = len(opt.Label)
		}
	}
	// Borders plus horizontal padding.
	return ui.Size{Width: width + 4, Height: len(s.options) + 2}
}

// RenderTrigger draws the closed control.
func (s *Select) RenderTrigger(theme ui.Theme) string {
	label := s.placeholder
	style := theme.Subtle()
	for _, opt := range s.options {
		if opt.Value == s.value.Get() {
			label = opt.Label
			style = theme.Text(theme.Foreground)
			break
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	return box.Render(style.Render(label) + " ▾")
}

// RenderMenu draws the open option list.
func (s *Select) RenderMenu(theme ui.Theme) string {
	var lines []string
	for i, opt := range s.options {
		line := theme.Text(theme.Foreground).Render(opt.Label)
		if i == s.highlight {
			line = lipgloss.NewStyle().
				Background(theme.Muted).
				Foreground(theme.Foreground).
				Render("» " + opt.Label)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return theme.Panel().Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
