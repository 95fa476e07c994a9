// Package testutils holds assertions shared by the tests of other packages.
package testutils

import (
	"github.com/stretchr/testify/assert"
	"go.lepak.sg/patterns/iterator"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from it, then expects
// it to be exhausted: HasNext must be false and a further Next
// must fail with iterator.ErrExhausted.
func Drain[T any](t TestT, data []T, it iterator.Iterator[T]) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		if !it.HasNext() {
			t.Errorf("iterator exhausted early, expecting i=%d %v", i, datum)
			return
		}

		el, err := it.Next()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, datum, el)
	}

	if it.HasNext() {
		el, _ := it.Next()
		t.Errorf("iterator should be exhausted, but yielded: %v", el)
		return
	}

	_, err := it.Next()
	assert.ErrorIs(t, err, iterator.ErrExhausted)
}
