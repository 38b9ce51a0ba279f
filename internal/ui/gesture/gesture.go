// Package gesture interprets drag movements for dismissable components.
package gesture

import "time"

// A drag is a dismiss intent when it travels far enough or fast enough;
// anything less returns the element to rest.
const (
	// DismissDistance is the translation threshold in cells.
	DismissDistance = 100.0
	// DismissVelocity is the velocity threshold in cells per second.
	DismissVelocity = 800.0
)

// ShouldDismiss reports whether a completed drag crosses either dismiss
// threshold. Direction does not matter.
func ShouldDismiss(translation, velocity float64) bool {
	return abs(translation) > DismissDistance || abs(velocity) > DismissVelocity
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Drag accumulates pointer samples for one gesture and derives translation
// and velocity at release time.
type Drag struct {
	active  bool
	originX int
	lastX   int
	started time.Time
	updated time.Time
}

// Start begins a drag at the given column.
func (d *Drag) Start(x int, now time.Time) {
	d.active = true
	d.originX = x
	d.lastX = x
	d.started = now
	d.updated = now
}

// Move records a new pointer sample. It is a no-op when no drag is active.
func (d *Drag) Move(x int, now time.Time) {
	if !d.active {
		return
	}
	d.lastX = x
	d.updated = now
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Translation returns the signed horizontal distance travelled so far.
func (d *Drag) Translation() float64 {
	return float64(d.lastX - d.originX)
}

// Release ends the drag and reports whether it crossed a dismiss threshold.
func (d *Drag) Release(now time.Time) bool {
	if !d.active {
		return false
	}
	d.active = false

	translation := d.Translation()
	elapsed := now.Sub(d.started).Seconds()
	velocity := 0.0
	if elapsed > 0 {
		velocity = translation / elapsed
	}

	return ShouldDismiss(translation, velocity)
}
