package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
)

// Button is a focusable action trigger.
type Button struct {
	label    string
	variant  Variant
	size     Size
	disabled bool
	focused  bool
}

// NewButton creates a default-variant button.
func NewButton(label string) *Button {
	return &Button{label: label, variant: VariantDefault, size: SizeDefault}
}

// WithVariant sets the visual preset.
func (b *Button) WithVariant(v Variant) *Button {
	b.variant = v
	return b
}

// WithSize sets the dimension preset.
func (b *Button) WithSize(s Size) *Button {
	b.size = s
	return b
}

// WithDisabled marks the button non-interactive.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Focus marks the button as the active control.
func (b *Button) Focus() { b.focused = true }

// Blur removes focus.
func (b *Button) Blur() { b.focused = false }

// Focused reports whether the button has focus.
func (b *Button) Focused() bool { return b.focused }

// Disabled reports whether the button ignores activation.
func (b *Button) Disabled() bool { return b.disabled }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// Render draws the button with the given theme.
func (b *Button) Render(theme ui.Theme) string {
	styles := ResolveStyle(theme, b.variant, b.size)
	container, label := styles.Container, styles.Label

	if b.disabled {
		label = label.Foreground(theme.MutedForeground)
	}
	if b.focused && !b.disabled {
		container = container.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Ring)
	}

	return container.Render(label.Render(b.label))
}
