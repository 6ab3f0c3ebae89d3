package httpcfg

import "maps"

// AttributeMap maps option keys to values. Immutable once built, so a
// single map can back any number of concurrent transports.
type AttributeMap struct {
	attrs map[any]any
}

// Empty returns a map with no attributes set.
func Empty() AttributeMap {
	return AttributeMap{attrs: nil}
}

type Builder struct {
	attrs map[any]any
}

func NewBuilder() *Builder {
	return &Builder{attrs: make(map[any]any)}
}

// Put records a value for key. Generic so the value type is checked
// against the key at compile time; chainable through the returned builder.
func Put[T any](b *Builder, key *Option[T], value T) *Builder {
	b.attrs[key] = value

	return b
}

func (b *Builder) Build() AttributeMap {
	attrs := make(map[any]any, len(b.attrs))
	maps.Copy(attrs, b.attrs)

	return AttributeMap{attrs: attrs}
}

// Get returns the value stored for key and whether it was set.
func Get[T any](m AttributeMap, key *Option[T]) (T, bool) {
	v, ok := m.attrs[key]
	if !ok {
		var zero T

		return zero, false
	}

	return v.(T), true //nolint:forcetypeassert // Put enforces the type per key
}

// GetOrDefault returns the value stored for key, or fallback when unset.
func GetOrDefault[T any](m AttributeMap, key *Option[T], fallback T) T {
	if v, ok := Get(m, key); ok {
		return v
	}

	return fallback
}

func (m AttributeMap) Has(key any) bool {
	_, ok := m.attrs[key]

	return ok
}

func (m AttributeMap) Len() int {
	return len(m.attrs)
}

// Merge layers m over lower: attributes set in m win, attributes only in
// lower fill the gaps. Neither input is modified.
func (m AttributeMap) Merge(lower AttributeMap) AttributeMap {
	merged := make(map[any]any, len(m.attrs)+len(lower.attrs))
	maps.Copy(merged, lower.attrs)
	maps.Copy(merged, m.attrs)

	return AttributeMap{attrs: merged}
}
