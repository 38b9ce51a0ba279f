package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
	"github.com/patchwork-ui/patchwork/internal/ui/state"
)

// AccordionSection is one collapsible region.
type AccordionSection struct {
	Title string
	Body  string
}

// Accordion shows a list of sections with at most one expanded. The open
// index is -1 when everything is collapsed.
type Accordion struct {
	sections []AccordionSection
	open     *state.Value[int]
}

// NewAccordion creates a fully collapsed accordion that owns its open state.
func NewAccordion(sections ...AccordionSection) *Accordion {
	return &Accordion{sections: sections, open: state.Owned(-1, nil)}
}

// WithValue hands ownership of the open index to the caller.
func (a *Accordion) WithValue(v *state.Value[int]) *Accordion {
	a.open = v
	return a
}

// Open returns the expanded section index, or -1.
func (a *Accordion) Open() int { return a.open.Get() }

// Toggle expands section i, collapsing any other. Toggling the open section
// collapses it.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.sections) {
		return
	}
	if a.open.Get() == i {
		a.open.Set(-1)
		return
	}
	a.open.Set(i)
}

// Render draws the accordion with the given theme.
func (a *Accordion) Render(theme ui.Theme) string {
	var lines []string
	for i, section := range a.sections {
		marker := "▸"
		if a.open.Get() == i {
			marker = "▾"
		}
		lines = append(lines, theme.Title().Render(marker+" "+section.Title))
		if a.open.Get() == i {
			body := lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(theme.MutedForeground).
				Render(section.Body)
			lines = append(lines, body)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
