package components

import (
	"github.com/patchwork-ui/patchwork/internal/ui"
	"github.com/patchwork-ui/patchwork/internal/ui/state"
)

// Switch is a binary toggle rendered as a sliding track.
type Switch struct {
	label    string
	on       *state.Value[bool]
	disabled bool
}

// NewSwitch creates a switch in the off position that owns its state.
func NewSwitch(label string) *Switch {
	return &Switch{label: label, on: state.Owned(false, nil)}
}

// WithOn seeds the owned state.
func (s *Switch) WithOn(on bool) *Switch {
	s.on = state.Owned(on, nil)
	return s
}

// WithValue hands ownership of the on/off slice to the caller.
func (s *Switch) WithValue(v *state.Value[bool]) *Switch {
	s.on = v
	return s
}

// WithDisabled marks the switch non-interactive.
func (s *Switch) WithDisabled(disabled bool) *Switch {
	s.disabled = disabled
	return s
}

// On returns the current position.
func (s *Switch) On() bool { return s.on.Get() }

// Toggle flips the switch. Disabled switches ignore it.
func (s *Switch) Toggle() {
	if s.disabled {
		return
	}
	state.Toggle(s.on)
}

// Render draws the switch with the given theme.
func (s *Switch) Render(theme ui.Theme) string {
	track := "(  o)"
	trackColor := theme.Primary
	if !s.on.Get() {
		track = "(o  )"
		trackColor = theme.MutedForeground
	}
	if s.disabled {
		trackColor = theme.Muted
	}

	labelStyle := theme.Text(theme.Foreground)
	if s.disabled {
		labelStyle = theme.Subtle()
	}

	return theme.Text(trackColor).Render(track) + " " + labelStyle.Render(s.label)
}
