package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/patchwork-ui/patchwork/internal/ui"
	"github.com/patchwork-ui/patchwork/internal/ui/gesture"
)

// DefaultToastDuration is how long a toast stays up without interaction.
const DefaultToastDuration = 4 * time.Second

// Toast is one transient notification. It expires on its own or when a drag
// crosses a dismiss threshold; a short slow drag springs it back into place.
type Toast struct {
	ID      int
	Message string
	Variant Variant

	shownAt time.Time
	drag    gesture.Drag
}

// Toaster queues toasts and owns their lifecycle.
type Toaster struct {
	duration time.Duration
	nextID   int
	active   []*Toast
}

// NewToaster creates an empty queue with the default duration.
func NewToaster() *Toaster {
	return &Toaster{duration: DefaultToastDuration, nextID: 1}
}

// WithDuration overrides the auto-dismiss duration.
func (t *Toaster) WithDuration(d time.Duration) *Toaster {
	t.duration = d
	return t
}

// Show enqueues a toast and returns its id.
func (t *Toaster) Show(message string, variant Variant) int {
	toast := &Toast{
		ID:      t.nextID,
		Message: message,
		Variant: variant,
		shownAt: time.Now(),
	}
	t.nextID++
	t.active = append(t.active, toast)
	return toast.ID
}

// Active returns the live toasts, oldest first.
func (t *Toaster) Active() []*Toast {
	return t.active
}

// Dismiss removes a toast by id.
func (t *Toaster) Dismiss(id int) {
	for i, toast := range t.active {
		if toast.ID == id {
			t.active = append(t.active[:i], t.active[i+1:]...)
			return
		}
	}
}

// Expire removes toasts whose duration has elapsed. A toast mid-drag is kept
// until the drag releases.
func (t *Toaster) Expire(now time.Time) {
	kept := t.active[:0]
	for _, toast := range t.active {
		if toast.drag.Active() || now.Sub(toast.shownAt) < t.duration {
			kept = append(kept, toast)
		}
	}
	t.active = kept
}

// DragStart begins a dismiss gesture on the toast with the given id.
func (t *Toaster) DragStart(id, x int, now time.Time) {
	if toast := t.find(id); toast != nil {
		toast.drag.Start(x, now)
	}
}

// DragMove updates an in-progress gesture.
func (t *Toaster) DragMove(id, x int, now time.Time) {
	if toast := t.find(id); toast != nil {
		toast.drag.Move(x, now)
	}
}

// DragRelease ends a gesture, dismissing the toast when it travelled far
// enough or fast enough.
func (t *Toaster) DragRelease(id int, now time.Time) {
	toast := t.find(id)
	if toast == nil {
		return
	}
	if toast.drag.Release(now) {
		t.Dismiss(id)
	}
}

func (t *Toaster) find(id int) *Toast {
	for _, toast := range t.active {
		if toast.ID == id {
			return toast
		}
	}
	return nil
}

// Render draws the stack of active toasts, oldest on top.
func (t *Toaster) Render(theme ui.Theme) string {
	if len(t.active) == 0 {
		return ""
	}

	var rendered []string
	for _, toast := range t.active {
		accent := theme.Foreground
		switch toast.Variant {
		case VariantDestructive:
			accent = theme.Destructive
		case VariantDefault:
			accent = theme.Primary
		}

		panel := theme.Panel().BorderForeground(accent)
		if offset := int(toast.drag.Translation()); offset > 0 {
			panel = panel.MarginLeft(offset)
		}
		rendered = append(rendered, panel.Render(theme.Text(theme.Foreground).Render(toast.Message)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
