package action

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a string-keyed map that remembers insertion order.
// Setting an existing key replaces its value and keeps its original position.
type Map struct {
	om *orderedmap.OrderedMap[string, Value]
}

func NewMap() *Map {
	return &Map{om: orderedmap.New[string, Value]()}
}

// Set stores v under key and returns m for chaining.
func (m *Map) Set(key string, v Value) *Map {
	m.om.Set(key, v)
	return m
}

func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	return m.om.Get(key)
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	_, ok := m.om.Delete(key)
	return ok
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.om.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Clone returns a shallow copy with the same key order.
func (m *Map) Clone() *Map {
	c := NewMap()
	m.Range(func(key string, v Value) bool {
		c.Set(key, v)
		return true
	})
	return c
}

// Without returns a copy of m with the given keys removed.
func (m *Map) Without(keys ...string) *Map {
	c := m.Clone()
	for _, k := range keys {
		c.Delete(k)
	}
	return c
}

// Equal compares entries pairwise in order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}

	a, b := m.om.Oldest(), other.om.Oldest()
	for a != nil && b != nil {
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}
