package components

import (
	"github.com/patchwork-ui/patchwork/internal/ui"
	"github.com/patchwork-ui/patchwork/internal/ui/state"
)

const (
	glyphChecked   = "[x]"
	glyphUnchecked = "[ ]"
)

// Checkbox is a binary form control. Its checked slice is owned by the
// checkbox unless the caller supplies an external value.
type Checkbox struct {
	label    string
	checked  *state.Value[bool]
	disabled bool
	focused  bool
}

// NewCheckbox creates an unchecked checkbox that owns its state.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{label: label, checked: state.Owned(false, nil)}
}

// WithChecked seeds the owned state.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.checked = state.Owned(checked, nil)
	return c
}

// WithValue hands ownership of the checked slice to the caller.
func (c *Checkbox) WithValue(v *state.Value[bool]) *Checkbox {
	c.checked = v
	return c
}

// WithDisabled marks the checkbox non-interactive.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// Focus marks the checkbox as the active control.
func (c *Checkbox) Focus() { c.focused = true }

// Blur removes focus.
func (c *Checkbox) Blur() { c.focused = false }

// Checked returns the current checked state.
func (c *Checkbox) Checked() bool { return c.checked.Get() }

// Toggle flips the checked state. Disabled checkboxes ignore it.
func (c *Checkbox) Toggle() {
	if c.disabled {
		return
	}
	state.Toggle(c.checked)
}

// Render draws the checkbox with the given theme.
func (c *Checkbox) Render(theme ui.Theme) string {
	glyph := glyphUnchecked
	if c.checked.Get() {
		glyph = glyphChecked
	}

	glyphStyle := theme.Text(theme.MutedForeground)
	labelStyle := theme.Text(theme.Foreground)
	switch {
	case c.disabled:
		labelStyle = theme.Subtle()
	case c.checked.Get():
		glyphStyle = theme.Text(theme.Primary)
	}
	if c.focused && !c.disabled {
		glyphStyle = glyphStyle.Bold(true).Foreground(theme.Ring)
	}

	return glyphStyle.Render(glyph) + " " + labelStyle.Render(c.label)
}
