// Package state models the controlled/uncontrolled duality shared by every
// interactive component: a value slice is either owned by the component or
// supplied by the caller. The source of truth is picked once at construction
// instead of being inferred from a missing value.
package state

// Value holds one state slice with an explicit owner. In owned mode the
// component mutates the value itself; in external mode the caller owns the
// truth and the component only mirrors it and reports change intents.
type Value[T comparable] struct {
	external bool
	current  T
	onChange func(T)
}

// Owned constructs a component-owned value seeded with initial. onChange may
// be nil.
func Owned[T comparable](initial T, onChange func(T)) *Value[T] {
	return &Value[T]{current: initial, onChange: onChange}
}

// External constructs a caller-owned value. The component never mutates it;
// Set only reports the intent through onChange, and the mirror follows the
// caller via Sync.
func External[T comparable](value T, onChange func(T)) *Value[T] {
	return &Value[T]{external: true, current: value, onChange: onChange}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// External reports whether the caller owns this value.
func (v *Value[T]) External() bool {
	return v.external
}

// Set applies a discrete user action. Owned values update and then report;
// external values only report, leaving the mirror on the caller-supplied
// value until Sync delivers the caller's decision.
func (v *Value[T]) Set(next T) {
	if next == v.current {
		return
	}
	if !v.external {
		v.current = next
	}
	if v.onChange != nil {
		v.onChange(next)
	}
}

// Sync updates the mirror of an external value with the caller's current
// truth. Owned values ignore it.
func (v *Value[T]) Sync(value T) {
	if v.external {
		v.current = value
	}
}

// Toggle flips a boolean value through Set.
func Toggle(v *Value[bool]) {
	v.Set(!v.Get())
}
