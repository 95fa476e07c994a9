// Package iterator provides pull-based cursors over collections,
// so that a list, a fixed-capacity array and a keyed map can all be
// walked through the same contract.
package iterator

import "errors"

var (
	// ErrExhausted is returned by Next when HasNext would have
	// returned false.
	ErrExhausted = errors.New("iterator exhausted")
	// ErrCapacityExceeded is returned when adding to a full Array.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// Iterator describes the common interface for all
// cursors in this package.
// HasNext reports whether a call to Next will succeed. It has no
// side effects and may be called any number of times.
// Next returns the next element and advances the cursor by one.
// If there is no next element, Next returns the zero T and an error
// wrapping ErrExhausted.
// The iterator may be abandoned at any time. There is no way to
// rewind it; ask the collection for a new one instead.
//
// The usual usage of an Iterator is like this:
//
//	i := someCollection.Iterator()
//	for i.HasNext() {
//		v, err := i.Next()
//		... do stuff with v, or break ...
//	}
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Aggregate is a collection that can hand out Iterators.
// Every call to Iterator returns a fresh cursor positioned before
// the first element. Cursors over the same Aggregate do not share
// their position.
type Aggregate[T any] interface {
	Iterator() Iterator[T]
}
