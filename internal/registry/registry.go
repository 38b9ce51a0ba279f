// Package registry maps component keys to their metadata and source files.
// The built-in registry is compiled into the binary; remote registries are
// loaded from a cloned git repository. A registry is built once per CLI
// invocation and never persisted.
package registry

import (
	"fmt"
	"io/fs"
	"sort"

	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

// Registry resolves component keys against a fixed component set backed by a
// filesystem holding the component sources.
type Registry struct {
	source     fs.FS
	components map[string]Component
	keys       []string
}

// New builds a registry over the given filesystem and component set.
// Duplicate keys and dangling Requires references are construction errors.
func New(source fs.FS, components []Component) (*Registry, error) {
	r := &Registry{
		source:     source,
		components: make(map[string]Component, len(components)),
	}

	for _, c := range components {
		if c.Key == "" {
			return nil, fmt.Errorf("component with empty key")
		}
		if _, exists := r.components[c.Key]; exists {
			return nil, fmt.Errorf("duplicate component key %q", c.Key)
		}
		r.components[c.Key] = c
		r.keys = append(r.keys, c.Key)
	}
	sort.Strings(r.keys)

	for _, c := range components {
		for _, req := range c.Requires {
			if _, ok := r.components[req]; !ok {
				return nil, fmt.Errorf("component %q requires unknown component %q", c.Key, req)
			}
		}
	}

	return r, nil
}

// Keys returns the sorted component keys.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// List returns all components sorted by key.
func (r *Registry) List() []Component {
	list := make([]Component, 0, len(r.keys))
	for _, key := range r.keys {
		list = append(list, r.components[key])
	}
	return list
}

// Get looks up a single component. Unknown keys yield an
// UnknownComponentError carrying the valid key list.
func (r *Registry) Get(key string) (Component, error) {
	c, ok := r.components[key]
	if !ok {
		return Component{}, patchworkerrors.NewUnknownComponentError(key, r.keys)
	}
	return c, nil
}

// Resolve expands the requested keys into the full install set, following
// Requires edges transitively. Each component appears once, prerequisites
// before dependents, and the order is stable for a given input.
func (r *Registry) Resolve(keys []string) ([]Component, error) {
	seen := make(map[string]bool, len(keys))
	var resolved []Component

	var visit func(key string) error
	visit = func(key string) error {
		if seen[key] {
			return nil
		}
		c, err := r.Get(key)
		if err != nil {
			return err
		}
		seen[key] = true
		for _, req := range c.Requires {
			if err := visit(req); err != nil {
				return err
			}
		}
		resolved = append(resolved, c)
		return nil
	}

	for _, key := range keys {
		if err := visit(key); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

// Open reads a component source file from the registry filesystem.
func (r *Registry) Open(path string) ([]byte, error) {
	return fs.ReadFile(r.source, path)
}

// Doc returns the rendered-ready markdown documentation for a component, or
// an empty slice when the component has none.
func (r *Registry) Doc(key string) ([]byte, error) {
	c, err := r.Get(key)
	if err != nil {
		return nil, err
	}
	if c.Doc == "" {
		return nil, nil
	}
	return fs.ReadFile(r.source, c.Doc)
}

// NpmDependencies returns the deduplicated, sorted union of npm packages
// required by the given components.
func NpmDependencies(components []Component) []string {
	set := make(map[string]struct{})
	for _, c := range components {
		for _, dep := range c.Dependencies {
			set[dep] = struct{}{}
		}
	}
	deps := make([]string, 0, len(set))
	for dep := range set {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}
