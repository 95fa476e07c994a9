package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/patterns/iterator"
	"go.lepak.sg/patterns/testutils"
)

type ranked struct {
	name string
	rank int
}

// byRankDesc orders higher ranks first.
func byRankDesc(a, b ranked) bool {
	return a.rank > b.rank
}

func TestKeyed(t *testing.T) {
	type setargs struct {
		k string
		v ranked
	}

	tests := []struct {
		name string
		less func(a, b ranked) bool
		set  []setargs
		do   func(t *testing.T, k *iterator.Keyed[string, ranked])
	}{
		{
			name: "empty",
			do: func(t *testing.T, k *iterator.Keyed[string, ranked]) {
				assert.Equal(t, 0, k.Len())
				assert.Empty(t, k.Keys())
				testutils.Drain(t, nil, k.Iterator())
			},
		},
		{
			name: "key order",
			set: []setargs{
				{"c", ranked{"C", 1}},
				{"a", ranked{"A", 2}},
				{"b", ranked{"B", 3}},
			},
			do: func(t *testing.T, k *iterator.Keyed[string, ranked]) {
				assert.Equal(t, []string{"a", "b", "c"}, k.Keys())
				testutils.Drain(t, []ranked{{"A", 2}, {"B", 3}, {"C", 1}}, k.Iterator())
			},
		},
		{
			name: "rank order with key tie break",
			less: byRankDesc,
			set: []setargs{
				{"zz", ranked{"Z", 5}},
				{"low", ranked{"L", 1}},
				{"aa", ranked{"A", 5}},
				{"high", ranked{"H", 9}},
			},
			do: func(t *testing.T, k *iterator.Keyed[string, ranked]) {
				assert.Equal(t, []string{"high", "aa", "zz", "low"}, k.Keys())
				testutils.Drain(t, []ranked{{"H", 9}, {"A", 5}, {"Z", 5}, {"L", 1}}, k.Iterator())
			},
		},
		{
			name: "replace",
			less: byRankDesc,
			set: []setargs{
				{"a", ranked{"A", 1}},
				{"b", ranked{"B", 2}},
				{"a", ranked{"A!", 3}},
			},
			do: func(t *testing.T, k *iterator.Keyed[string, ranked]) {
				assert.Equal(t, 2, k.Len())
				v, ok := k.Get("a")
				assert.True(t, ok)
				assert.Equal(t, ranked{"A!", 3}, v)
				testutils.Drain(t, []ranked{{"A!", 3}, {"B", 2}}, k.Iterator())
			},
		},
		{
			name: "delete",
			set: []setargs{
				{"a", ranked{"A", 1}},
				{"b", ranked{"B", 2}},
			},
			do: func(t *testing.T, k *iterator.Keyed[string, ranked]) {
				assert.True(t, k.Delete("a"))
				assert.False(t, k.Delete("a"))
				_, ok := k.Get("a")
				assert.False(t, ok)
				testutils.Drain(t, []ranked{{"B", 2}}, k.Iterator())
			},
		},
		{
			name: "mutation after iterator",
			set: []setargs{
				{"a", ranked{"A", 1}},
				{"b", ranked{"B", 2}},
			},
			do: func(t *testing.T, k *iterator.Keyed[string, ranked]) {
				i := k.Iterator()
				k.Delete("a")
				k.Set("c", ranked{"C", 3})
				testutils.Drain(t, []ranked{{"A", 1}, {"B", 2}}, i)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := iterator.NewKeyed[string](tt.less)
			for _, e := range tt.set {
				k.Set(e.k, e.v)
			}

			tt.do(t, k)
		})
	}
}
