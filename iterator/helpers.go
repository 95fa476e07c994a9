package iterator

// Collect drains the iterator and returns the elements in order.
// The result is nil if the iterator yields nothing.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	ForEach(it, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ForEach applies f to each remaining element of the iterator.
// If f returns false, the iteration is stopped early.
func ForEach[T any](it Iterator[T], f func(v T) bool) {
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			// HasNext lied, this is a bug in the iterator
			panic(err)
		}

		if !f(v) {
			return
		}
	}
}

// Filter drains the iterator and returns the elements for which
// keep returns true.
func Filter[T any](it Iterator[T], keep func(v T) bool) []T {
	var out []T
	ForEach(it, func(v T) bool {
		if keep(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}
