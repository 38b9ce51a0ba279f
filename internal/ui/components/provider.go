package components

import (
	"errors"

	"github.com/patchwork-ui/patchwork/internal/ui"
)

// ErrNoProvider is returned when a shared facility is requested outside a
// provider scope.
var ErrNoProvider = errors.New("no provider in scope")

// Provider carries the shared facilities widgets resolve at runtime: the
// active theme and the toast queue. Accessors require an explicit provider
// handle so a missing scope fails at the call site instead of silently using
// a fallback.
type Provider struct {
	theme   ui.Theme
	toaster *Toaster
}

// NewProvider creates a provider with the given theme and a fresh toaster.
func NewProvider(theme ui.Theme) *Provider {
	return &Provider{theme: theme, toaster: NewToaster()}
}

// Theme returns the active theme.
func (p *Provider) Theme() ui.Theme {
	return p.theme
}

// UseToaster resolves the toast queue from a provider scope. It fails when
// called with no provider.
func UseToaster(p *Provider) (*Toaster, error) {
	if p == nil {
		return nil, ErrNoProvider
	}
	return p.toaster, nil
}
