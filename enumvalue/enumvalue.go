// Package enumvalue interns enum-like string values so each
// (variant type, underlying string) pair maps to exactly one canonical
// instance. With pointer element types, equality by identity and equality
// by value coincide, and interned values work as map keys. Values from
// different registries are never interchangeable: each variant type owns
// its own registry, so sharing a string never shares an instance.
package enumvalue

import "sync"

// Registry holds the canonical instances for one variant type.
type Registry[T any] struct {
	construct func(string) T
	values    sync.Map // string -> T
}

// NewRegistry creates a registry whose canonical instances are produced
// by construct on first request.
func NewRegistry[T any](construct func(string) T) *Registry[T] {
	return &Registry[T]{
		construct: construct,
		values:    sync.Map{},
	}
}

// Value returns the canonical instance for raw, constructing it lazily.
// Concurrent first requests may both run the constructor, but every caller
// observes the same stored instance; losers of the race discard theirs.
func (r *Registry[T]) Value(raw string) T {
	if v, ok := r.values.Load(raw); ok {
		return v.(T) //nolint:forcetypeassert // only Value stores entries
	}

	v, _ := r.values.LoadOrStore(raw, r.construct(raw))

	return v.(T) //nolint:forcetypeassert
}

// Len reports how many distinct values have been interned so far.
func (r *Registry[T]) Len() int {
	n := 0

	r.values.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}
