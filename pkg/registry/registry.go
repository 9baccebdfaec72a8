package registry

import (
	"fmt"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

// Registry stores items by name and remembers the order in which they were
// registered. Items cannot be removed; a registry is filled once and then
// only read.
type Registry[T any] interface {
	// Register adds an item under a unique, non-empty name
	Register(name string, item T) error

	// Get retrieves an item by name
	Get(name string) (T, error)

	// Has checks if an item is registered
	Has(name string) bool

	// Names returns the registered names in registration order
	Names() []string

	// Values returns the registered items in registration order
	Values() []T

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	items map[string]T
	order []string
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}
	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.items[name] = item
	r.order = append(r.order, name)
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}
	return item, nil
}

func (r *registry[T]) Has(name string) bool {
	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *registry[T]) Values() []T {
	values := make([]T, 0, len(r.order))
	for _, name := range r.order {
		values = append(values, r.items[name])
	}
	return values
}

func (r *registry[T]) Count() int {
	return len(r.order)
}

// MustRegister registers an item and panics if registration fails.
// Used where a failed registration is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet retrieves an item and panics if not found
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
