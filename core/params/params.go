// File: params.go
// Title: Enum-Keyed Settings Container
// Description: Implements the generic Map type with explicit values,
//              per-map defaults, and parent inheritance, plus typed access
//              returning coded errors.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package params

import (
	"sync"

	sverror "github.com/mbertram/sview/core/error"
)

// DefaultsFunc supplies a default value for a key that has not been set
// explicitly. The second return reports whether a default exists.
type DefaultsFunc[K comparable] func(key K) (interface{}, bool)

// Map is an enum-keyed settings container. The zero value is not usable;
// construct with NewMap. A Map is safe for concurrent use.
type Map[K comparable] struct {
	mu       sync.RWMutex
	values   map[K]interface{}
	defaults DefaultsFunc[K]
	parent   *Map[K]
}

// NewMap creates an empty settings map.
func NewMap[K comparable]() *Map[K] {
	return &Map[K]{
		values: make(map[K]interface{}),
	}
}

// WithDefaults installs a defaults function consulted when a key has no
// explicit value. Returns the map for chaining.
func (m *Map[K]) WithDefaults(fn DefaultsFunc[K]) *Map[K] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaults = fn
	return m
}

// WithParent installs a parent map consulted when neither an explicit value
// nor a local default exists. Returns the map for chaining.
func (m *Map[K]) WithParent(parent *Map[K]) *Map[K] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parent = parent
	return m
}

// Set stores a value for the key. Returns the map for chaining.
func (m *Map[K]) Set(key K, value interface{}) *Map[K] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return m
}

// Clear removes an explicitly-set key. Defaults and inherited values are
// unaffected. Returns the map for chaining.
func (m *Map[K]) Clear(key K) *Map[K] {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return m
}

// GetAny returns the value for the key, searching explicitly-set values,
// then local defaults, then the parent chain. A miss yields an error coded
// CodeParameterNotFound.
func (m *Map[K]) GetAny(key K) (interface{}, error) {
	m.mu.RLock()
	value, ok := m.values[key]
	defaults := m.defaults
	parent := m.parent
	m.mu.RUnlock()

	if ok {
		return value, nil
	}
	if defaults != nil {
		if value, ok := defaults(key); ok {
			return value, nil
		}
	}
	if parent != nil {
		return parent.GetAny(key)
	}
	return nil, sverror.NewCode(sverror.CodeParameterNotFound).
		WithOperation("params.GetAny").
		WithDetail("key", key)
}

// Has reports whether GetAny would succeed for the key.
func (m *Map[K]) Has(key K) bool {
	_, err := m.GetAny(key)
	return err == nil
}

// Len returns the number of explicitly-set keys.
func (m *Map[K]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// All returns a snapshot of the explicitly-set keys and values. Defaults
// and inherited values are not included.
func (m *Map[K]) All() map[K]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[K]interface{}, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Get returns the value for the key as type V. A stored value of any other
// dynamic type yields an error coded CodeParameterWrongType; a missing key
// yields CodeParameterNotFound.
func Get[V any, K comparable](m *Map[K], key K) (V, error) {
	var zero V
	value, err := m.GetAny(key)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(V)
	if !ok {
		return zero, sverror.NewCode(sverror.CodeParameterWrongType).
			WithOperation("params.Get").
			WithDetail("key", key).
			WithDetail("stored", value)
	}
	return typed, nil
}

// GetOr returns the value for the key as type V, or fallback when the key
// is missing or holds a different type.
func GetOr[V any, K comparable](m *Map[K], key K, fallback V) V {
	value, err := Get[V](m, key)
	if err != nil {
		return fallback
	}
	return value
}
