package iterator

import "fmt"

var _ Aggregate[int] = (*Array[int])(nil)

// Array is a collection with a fixed capacity.
// Iteration follows insertion order and only ever covers
// the slots that were filled.
// Array is not safe for concurrent use.
type Array[T any] struct {
	// cap(items) is the bound, len(items) the logical length
	items []T
}

// NewArray returns an empty Array that accepts at most capacity items.
func NewArray[T any](capacity int) *Array[T] {
	if capacity < 0 {
		panic("negative capacity")
	}

	return &Array[T]{
		items: make([]T, 0, capacity),
	}
}

// Add adds item to the array.
// If the array is already full, the item is not added
// and an error wrapping ErrCapacityExceeded is returned.
func (a *Array[T]) Add(item T) error {
	if len(a.items) == cap(a.items) {
		return fmt.Errorf("%w: array holds at most %d items", ErrCapacityExceeded, cap(a.items))
	}

	a.items = append(a.items, item)
	return nil
}

// Len returns the number of items in the array.
func (a *Array[_]) Len() int {
	return len(a.items)
}

// Cap returns the maximum number of items the array accepts.
func (a *Array[_]) Cap() int {
	return cap(a.items)
}

// Iterator returns a cursor over the items currently in the array.
func (a *Array[T]) Iterator() Iterator[T] {
	return Over(snapshot(a.items))
}
