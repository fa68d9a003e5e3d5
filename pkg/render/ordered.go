package render

import "iter"

// OrderedMap is a keyed container that remembers insertion order. Keys must
// be comparable. The zero value is ready to use.
type OrderedMap struct {
	keys   []any
	values map[any]any
}

// NewOrderedMap creates an empty map with room for size entries
func NewOrderedMap(size int) *OrderedMap {
	return &OrderedMap{
		keys:   make([]any, 0, size),
		values: make(map[any]any, size),
	}
}

// Set stores value under key. Updating an existing key keeps its position.
func (m *OrderedMap) Set(key, value any) {
	if m.values == nil {
		m.values = make(map[any]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key
func (m *OrderedMap) Get(key any) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key, reporting whether it was present
func (m *OrderedMap) Delete(key any) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in insertion order
func (m *OrderedMap) Keys() []any {
	keys := make([]any, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// All yields the entries in insertion order
func (m *OrderedMap) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
