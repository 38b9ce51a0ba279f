package registry

import (
	"github.com/patchwork-ui/patchwork/internal/assets"
)

const (
	depReanimated     = "react-native-reanimated"
	depGestureHandler = "react-native-gesture-handler"
	depVectorIcons    = "@expo/vector-icons"
)

func builtinComponent(key, name, description string, deps, requires []string) Component {
	return Component{
		Key:          key,
		Name:         name,
		Description:  description,
		Dependencies: deps,
		Requires:     requires,
		Files: []FileMapping{
			{Source: "templates/ui/" + key + ".tsx", Target: "ui/" + key + ".tsx"},
		},
		Doc: "docs/" + key + ".md",
	}
}

// Builtin returns the registry compiled into the binary.
func Builtin() (*Registry, error) {
	components := []Component{
		builtinComponent("accordion", "Accordion", "Stacked disclosure sections, one open at a time",
			[]string{depVectorIcons}, nil),
		builtinComponent("alert", "Alert", "Static callout with icon, title, and description",
			[]string{depVectorIcons}, nil),
		builtinComponent("avatar", "Avatar", "Circular image with initials fallback",
			nil, nil),
		builtinComponent("badge", "Badge", "Small status pill",
			nil, nil),
		builtinComponent("button", "Button", "Pressable with variants, sizes, and a press animation",
			[]string{depReanimated}, nil),
		builtinComponent("card", "Card", "Surface container with header, content, and footer",
			nil, nil),
		builtinComponent("checkbox", "Checkbox", "Binary toggle with controlled and uncontrolled modes",
			[]string{depVectorIcons}, nil),
		builtinComponent("dialog", "Dialog", "Centered modal over a dimmed backdrop",
			nil, []string{"button"}),
		builtinComponent("drawer", "Drawer", "Bottom sheet with drag-to-dismiss",
			[]string{depReanimated, depGestureHandler}, nil),
		builtinComponent("input", "Input", "Text field with label, helper text, and invalid state",
			nil, nil),
		builtinComponent("label", "Label", "Form field caption with required marker",
			nil, nil),
		builtinComponent("progress", "Progress", "Determinate progress bar with animated fill",
			[]string{depReanimated}, nil),
		builtinComponent("radio-group", "Radio Group", "Single-choice option list",
			nil, nil),
		builtinComponent("select", "Select", "Dropdown picker with overflow-aware placement",
			[]string{depVectorIcons}, nil),
		builtinComponent("separator", "Separator", "Hairline divider",
			nil, nil),
		builtinComponent("skeleton", "Skeleton", "Pulsing loading placeholder",
			[]string{depReanimated}, nil),
		builtinComponent("switch", "Switch", "On/off toggle with spring-animated thumb",
			[]string{depReanimated}, nil),
		builtinComponent("tabs", "Tabs", "Segmented tab bar with content panes",
			nil, nil),
		builtinComponent("textarea", "Textarea", "Multi-line text field",
			nil, nil),
		builtinComponent("toast", "Toast", "Swipe-dismissable transient notification",
			[]string{depReanimated, depGestureHandler}, nil),
		builtinComponent("tooltip", "Tooltip", "Long-press text bubble",
			[]string{depReanimated}, nil),
	}

	return New(assets.FS(), components)
}

// ThemeTemplate is the embedded path of the theme configuration source that
// `patchwork init` writes into consumer projects.
const ThemeTemplate = "templates/theme/theme.ts"
