package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
)

// Confirm is a yes/no prompt rendered as a pair of buttons. It runs as a
// bubbletea program; escape counts as no.
type Confirm struct {
	question string
	theme    ui.Theme
	yes      *Button
	no       *Button
	onYes    bool
	done     bool
	accepted bool
}

// NewConfirm creates a prompt with the no button focused.
func NewConfirm(question string, theme ui.Theme) *Confirm {
	c := &Confirm{
		question: question,
		theme:    theme,
		yes:      NewButton("Yes"),
		no:       NewButton("No").WithVariant(VariantOutline),
	}
	c.no.Focus()
	return c
}

// Init implements tea.Model.
func (c *Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "left", "right", "tab", "h", "l":
		c.focus(!c.onYes)
	case "y":
		c.accepted = true
		c.done = true
		return c, tea.Quit
	case "n", "esc", "ctrl+c":
		c.done = true
		return c, tea.Quit
	case "enter", " ":
		c.accepted = c.onYes
		c.done = true
		return c, tea.Quit
	}
	return c, nil
}

func (c *Confirm) focus(yes bool) {
	c.onYes = yes
	if yes {
		c.yes.Focus()
		c.no.Blur()
	} else {
		c.no.Focus()
		c.yes.Blur()
	}
}

// View implements tea.Model.
func (c *Confirm) View() string {
	if c.done {
		return ""
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		c.yes.Render(c.theme), " ", c.no.Render(c.theme))
	return lipgloss.JoinVertical(lipgloss.Left,
		c.theme.Title().Render(c.question), "", buttons)
}

// Accepted reports whether the user confirmed.
func (c *Confirm) Accepted() bool { return c.accepted }
