package ui

// Rect is a screen-space rectangle in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Placement is a resolved dropdown position.
type Placement struct {
	X     int
	Y     int
	Above bool
}

// edgeMargin keeps dropdown content off the screen edges.
const edgeMargin = 1

// PlaceDropdown positions dropdown content relative to its trigger. Content
// opens below the trigger unless it would overflow the bottom of the screen,
// in which case it flips above. The horizontal position clamps to the edge
// margin on both sides.
func PlaceDropdown(trigger Rect, content Size, screen Size) Placement {
	p := Placement{Y: trigger.Y + trigger.Height}

	if p.Y+content.Height > screen.Height-edgeMargin {
		p.Y = trigger.Y - content.Height
		p.Above = true
	}
	if p.Y < edgeMargin {
		p.Y = edgeMargin
	}

	p.X = trigger.X
	if p.X+content.Width > screen.Width-edgeMargin {
		p.X = screen.Width - edgeMargin - content.Width
	}
	if p.X < edgeMargin {
		p.X = edgeMargin
	}

	return p
}
