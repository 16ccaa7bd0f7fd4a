// Package dicts provides an insertion-ordered key-value mapping, used as the
// output container of lazy.GroupBy and as a standalone ordered dictionary.
package dicts

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dict is a generic key-value mapping that remembers the order in which keys
// were first inserted. Setting an existing key updates its value in place
// without changing its position.
type Dict[K comparable, V any] struct {
	entries *orderedmap.OrderedMap[K, V]
}

func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{entries: orderedmap.New[K, V]()}
}

// Set inserts or replaces the value for key. A later Set for the same key
// wins; the key keeps its original position.
func (d *Dict[K, V]) Set(key K, value V) {
	d.entries.Set(key, value)
}

// Get returns the value stored for key, with ok reporting presence.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	return d.entries.Get(key)
}

// Update rewrites the value for key through f, which receives the current
// value (or the zero value) and whether the key was present. Useful for
// accumulating into a group without a separate Get/Set pair.
func (d *Dict[K, V]) Update(key K, f func(value V, ok bool) V) {
	v, ok := d.entries.Get(key)
	d.entries.Set(key, f(v, ok))
}

// Delete removes key, reporting whether it was present.
func (d *Dict[K, V]) Delete(key K) bool {
	_, ok := d.entries.Delete(key)
	return ok
}

func (d *Dict[K, V]) Len() int {
	return d.entries.Len()
}

// Keys returns the keys in first-insertion order.
func (d *Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.entries.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Pairs returns an iterator over the entries in first-insertion order.
func (d *Dict[K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
