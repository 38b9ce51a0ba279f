// Package ui is the themed terminal component kit behind patchwork's
// interactive surfaces. Components resolve their colors from a Theme at
// render time; themes are value types and are never mutated by rendering.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme maps semantic color tokens to terminal colors, mirroring the token
// names the shipped component templates use.
type Theme struct {
	Background            lipgloss.AdaptiveColor
	Foreground            lipgloss.AdaptiveColor
	Card                  lipgloss.AdaptiveColor
	Muted                 lipgloss.AdaptiveColor
	MutedForeground       lipgloss.AdaptiveColor
	Primary               lipgloss.AdaptiveColor
	PrimaryForeground     lipgloss.AdaptiveColor
	Secondary             lipgloss.AdaptiveColor
	SecondaryForeground   lipgloss.AdaptiveColor
	Destructive           lipgloss.AdaptiveColor
	DestructiveForeground lipgloss.AdaptiveColor
	Success               lipgloss.AdaptiveColor
	Border                lipgloss.AdaptiveColor
	Ring                  lipgloss.AdaptiveColor
}

// DefaultTheme returns the neutral zinc theme matching the shipped theme.ts
// template.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Theme{
		Background:            ac("#ffffff", "#09090b"),
		Foreground:            ac("#09090b", "#fafafa"),
		Card:                  ac("#ffffff", "#18181b"),
		Muted:                 ac("#f4f4f5", "#27272a"),
		MutedForeground:       ac("#71717a", "#a1a1aa"),
		Primary:               ac("#18181b", "#fafafa"),
		PrimaryForeground:     ac("#fafafa", "#18181b"),
		Secondary:             ac("#f4f4f5", "#27272a"),
		SecondaryForeground:   ac("#18181b", "#fafafa"),
		Destructive:           ac("#dc2626", "#ef4444"),
		DestructiveForeground: ac("#fafafa", "#fafafa"),
		Success:               ac("#16a34a", "#4ade80"),
		Border:                ac("#e4e4e7", "#27272a"),
		Ring:                  ac("#a1a1aa", "#52525b"),
	}
}

// Text returns a foreground-only style for the given token.
func (t Theme) Text(color lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color)
}

// Title is the emphasized heading style.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Foreground)
}

// Subtle is the de-emphasized helper style.
func (t Theme) Subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MutedForeground)
}

// ErrorText is the destructive-token text style.
func (t Theme) ErrorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Destructive)
}

// SuccessText is the success-token text style.
func (t Theme) SuccessText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success)
}

// Panel is the bordered container style shared by overlay components.
func (t Theme) Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
