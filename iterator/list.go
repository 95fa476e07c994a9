package iterator

var _ Aggregate[int] = (*List[int])(nil)

// List is a growable collection. Iteration follows insertion order.
// The zero List may be used immediately.
// List is not safe for concurrent use.
type List[T any] struct {
	items []T
}

// Add appends item to the list.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

// Len returns the number of items in the list.
func (l *List[_]) Len() int {
	return len(l.items)
}

// Iterator returns a cursor over the items currently in the list.
// Items added after this call are not seen by the cursor.
func (l *List[T]) Iterator() Iterator[T] {
	return Over(snapshot(l.items))
}
