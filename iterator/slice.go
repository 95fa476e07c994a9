package iterator

import "fmt"

var _ Iterator[int] = (*Slice[int])(nil)

// Slice is a cursor over a slice. The stores in this package hand
// out Slices over a snapshot of their contents.
type Slice[T any] struct {
	items []T
	pos   int
}

// Over returns a cursor over items. The slice is not copied,
// so the caller must not modify it while the cursor is in use.
func Over[T any](items []T) *Slice[T] {
	return &Slice[T]{
		items: items,
	}
}

// HasNext returns true if Next will yield an element.
func (s *Slice[T]) HasNext() bool {
	return s != nil && s.pos < len(s.items)
}

// Next returns the next element of the slice.
func (s *Slice[T]) Next() (T, error) {
	if !s.HasNext() {
		var zero T
		if s == nil {
			return zero, ErrExhausted
		}
		return zero, fmt.Errorf("%w: after %d elements", ErrExhausted, len(s.items))
	}

	v := s.items[s.pos]
	s.pos++
	return v, nil
}

// snapshot limits the capacity of s to its length, so later appends
// to the backing array by the owner are invisible through the result.
func snapshot[T any](s []T) []T {
	return s[:len(s):len(s)]
}
