package iterator

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var _ Aggregate[int] = (*Keyed[string, int])(nil)

// Keyed is a collection of values indexed by key.
// Unlike a plain map, iteration order is deterministic: values are
// ordered by the less function given to NewKeyed, and values that
// compare equal (or all values, if less is nil) are ordered by
// ascending key.
// Keyed is not safe for concurrent use.
type Keyed[K constraints.Ordered, V any] struct {
	m    map[K]V
	less func(a, b V) bool
}

// NewKeyed returns an empty Keyed collection.
// less may be nil, in which case iteration is in key order.
func NewKeyed[K constraints.Ordered, V any](less func(a, b V) bool) *Keyed[K, V] {
	return &Keyed[K, V]{
		m:    make(map[K]V),
		less: less,
	}
}

// Set behaves like the map set `k[key] = v`.
func (k *Keyed[K, V]) Set(key K, v V) {
	k.m[key] = v
}

// Get behaves like the map access `v, ok := k[key]`.
func (k *Keyed[K, V]) Get(key K) (v V, ok bool) {
	v, ok = k.m[key]
	return
}

// Delete behaves like `delete(k, key)`.
// If the key was not found, ok will be false.
func (k *Keyed[K, _]) Delete(key K) (ok bool) {
	_, ok = k.m[key]
	delete(k.m, key)
	return
}

// Len behaves like `len(k)`.
func (k *Keyed[_, _]) Len() int {
	return len(k.m)
}

// Keys returns the keys in iteration order.
func (k *Keyed[K, V]) Keys() []K {
	keys := make([]K, 0, len(k.m))
	for key := range k.m {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b K) bool {
		if k.less != nil {
			va, vb := k.m[a], k.m[b]
			if k.less(va, vb) {
				return true
			}
			if k.less(vb, va) {
				return false
			}
		}
		return a < b
	})

	return keys
}

// Iterator returns a cursor over the values currently in the collection.
// The order is fixed when Iterator is called; later calls to Set or
// Delete do not affect the returned cursor.
func (k *Keyed[K, V]) Iterator() Iterator[V] {
	keys := k.Keys()
	values := make([]V, len(keys))
	for i, key := range keys {
		values[i] = k.m[key]
	}

	return Over(values)
}
