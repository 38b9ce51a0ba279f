package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
)

// Input is a labelled single-line text field with helper and error slots.
// Setting an error replaces the helper line and recolors the border until the
// error is cleared.
type Input struct {
	field  textinput.Model
	label  string
	helper string
	errMsg string
}

// NewInput creates an empty input.
func NewInput(label string) *Input {
	field := textinput.New()
	field.Prompt = ""
	return &Input{field: field, label: label}
}

// WithPlaceholder sets the empty-state hint text.
func (i *Input) WithPlaceholder(placeholder string) *Input {
	i.field.Placeholder = placeholder
	return i
}

// WithHelper sets the helper line shown under the field.
func (i *Input) WithHelper(helper string) *Input {
	i.helper = helper
	return i
}

// WithValue seeds the field contents.
func (i *Input) WithValue(value string) *Input {
	i.field.SetValue(value)
	return i
}

// Focus gives the field keyboard focus.
func (i *Input) Focus() tea.Cmd { return i.field.Focus() }

// Blur removes keyboard focus.
func (i *Input) Blur() { i.field.Blur() }

// Value returns the current field contents.
func (i *Input) Value() string { return i.field.Value() }

// SetError marks the field invalid with a message. An empty message clears
// the error state.
func (i *Input) SetError(msg string) { i.errMsg = msg }

// Invalid reports whether the field is in the error state.
func (i *Input) Invalid() bool { return i.errMsg != "" }

// Update forwards terminal events to the field.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.field, cmd = i.field.Update(msg)
	return cmd
}

// Render draws the label, field, and helper or error line.
func (i *Input) Render(theme ui.Theme) string {
	borderColor := theme.Border
	footer := theme.Subtle().Render(i.helper)
	if i.errMsg != "" {
		borderColor = theme.Destructive
		footer = theme.ErrorText().Render(i.errMsg)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	lines := []string{
		theme.Text(theme.Foreground).Render(i.label),
		box.Render(i.field.View()),
	}
	if footer != "" {
		lines = append(lines, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
