package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
)

// Variant selects a named visual preset.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
)

// Size selects a named dimension preset.
type Size string

const (
	SizeSmall   Size = "sm"
	SizeDefault Size = "default"
	SizeLarge   Size = "lg"
)

// ParseVariant validates a variant key.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantDefault, VariantSecondary, VariantDestructive, VariantOutline, VariantGhost:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// ParseSize validates a size key.
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeSmall, SizeDefault, SizeLarge:
		return Size(s), nil
	}
	return "", fmt.Errorf("unknown size %q", s)
}

// StyleSet pairs the container and label styles resolved for a widget.
type StyleSet struct {
	Container lipgloss.Style
	Label     lipgloss.Style
}

type colorPair struct {
	background lipgloss.AdaptiveColor
	foreground lipgloss.AdaptiveColor
	bordered   bool
}

func variantColors(theme ui.Theme, variant Variant) colorPair {
	switch variant {
	case VariantSecondary:
		return colorPair{background: theme.Secondary, foreground: theme.SecondaryForeground}
	case VariantDestructive:
		return colorPair{background: theme.Destructive, foreground: theme.DestructiveForeground}
	case VariantOutline:
		return colorPair{foreground: theme.Foreground, bordered: true}
	case VariantGhost:
		return colorPair{foreground: theme.Foreground}
	default:
		return colorPair{background: theme.Primary, foreground: theme.PrimaryForeground}
	}
}

type sizePadding struct {
	x int
	y int
}

var sizePaddings = map[Size]sizePadding{
	SizeSmall:   {x: 1},
	SizeDefault: {x: 2},
	SizeLarge:   {x: 4},
}

// ResolveStyle maps (variant, size) to a style set. It is a pure lookup: the
// same inputs always produce the same styles, and the underlying tables are
// never modified.
func ResolveStyle(theme ui.Theme, variant Variant, size Size) StyleSet {
	colors := variantColors(theme, variant)
	padding, ok := sizePaddings[size]
	if !ok {
		padding = sizePaddings[SizeDefault]
	}

	container := lipgloss.NewStyle().Padding(padding.y, padding.x)
	label := lipgloss.NewStyle().Foreground(colors.foreground)

	if colors.bordered {
		container = container.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)
	}
	if colors.background.Light != "" || colors.background.Dark != "" {
		container = container.Background(colors.background)
		label = label.Background(colors.background)
	}

	return StyleSet{Container: container, Label: label}
}
