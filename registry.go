package arbor

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicate is returned when registering a name that is already taken.
	ErrDuplicate = errors.New("arbor: already registered")
	// ErrNotFound is returned when looking up a name that was never registered.
	ErrNotFound = errors.New("arbor: not registered")
)

// Registry is a named table of values of one kind (shape views, HTML
// components, ...). Registries are plain values created by their owner;
// there is no package-level registry and nothing registers itself in init.
type Registry[T any] struct {
	kind    string
	entries map[string]T
}

// NewRegistry creates an empty registry. kind names the entries in errors
// ("shape", "html component").
func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: make(map[string]T)}
}

// Register adds value under name. Returns an error wrapping ErrDuplicate
// if the name is taken.
func (r *Registry[T]) Register(name string, value T) error {
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrDuplicate)
	}
	r.entries[name] = value
	return nil
}

// Get returns the value registered under name.
func (r *Registry[T]) Get(name string) (T, error) {
	v, ok := r.entries[name]
	if !ok {
		return v, fmt.Errorf("lookup %s %q: %w", r.kind, name, ErrNotFound)
	}
	return v, nil
}

// MustGet is like Get but panics when name is not registered.
func (r *Registry[T]) MustGet(name string) T {
	v, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Unregister removes name. No-op if absent.
func (r *Registry[T]) Unregister(name string) {
	delete(r.entries, name)
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Component renders the inner content of an html-shaped cell.
type Component func(c *Cell) string

// NewComponentRegistry creates an empty HTML component registry.
func NewComponentRegistry() *Registry[Component] {
	return NewRegistry[Component]("html component")
}
