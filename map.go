package beetree

import (
	"cmp"
)

// Map is a sorted map from keys K to values V.
//
// The zero value is not usable; create maps with New or NewWithConfig.
// A Map is not safe for concurrent use.
type Map[K, V any] struct {
	cfg    Config[K]
	root   treeNode[K, V]
	height int // 0 means empty map
	count  int
}

// New creates an empty map over naturally ordered keys, using DefaultFanout.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewWithConfig[K, V](OrderedConfig[K]())
	assert(err == nil, "default configuration is invalid")
	return m
}

// NewWithConfig creates an empty map with validated configuration.
func NewWithConfig[K, V any](cfg Config[K]) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		T().Errorf("beetree: %v", err)
		return nil, err
	}
	cfg = cfg.normalized()
	return &Map[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective map configuration.
func (m *Map[K, V]) Config() Config[K] {
	return m.cfg
}

// Fanout returns the max number of entries per node. It is fixed for the
// lifetime of the map.
func (m *Map[K, V]) Fanout() int {
	return m.cfg.Fanout
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m == nil || m.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a terminal
// root.
func (m *Map[K, V]) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Delete removes key from the map.
func (m *Map[K, V]) Delete(key K) (V, bool, error) {
	var zero V
	return zero, false, ErrUnimplemented
}

// GetBefore returns the greatest entry with a key less than key, or less than
// or equal to key if inclusive is set.
func (m *Map[K, V]) GetBefore(key K, inclusive bool) (K, V, error) {
	var zk K
	var zv V
	return zk, zv, ErrUnimplemented
}
