package composite

import (
	"strconv"
	"testing"

	"go.lepak.sg/patterns/iterator"
	"pgregory.net/rapid"
)

// randomTree builds a tree by a random sequence of adds. Every node
// gets a distinct name, and the names are returned in pre-order as
// computed by recursion over the add sequence.
func randomTree(t *rapid.T) (*Container[game], int) {
	root := NewContainer[game]("n0", "")
	containers := []*Container[game]{root}
	count := 1

	adds := rapid.IntRange(0, 60).Draw(t, "adds")
	for i := 0; i < adds; i++ {
		parent := rapid.SampledFrom(containers).Draw(t, "parent")
		name := "n" + strconv.Itoa(count)
		count++

		if rapid.Bool().Draw(t, "container") {
			c := NewContainer[game](name, "")
			containers = append(containers, c)
			if err := parent.Add(c); err != nil {
				t.Fatalf("Add: %v", err)
			}
		} else {
			if err := parent.Add(leaf(name, i)); err != nil {
				t.Fatalf("Add: %v", err)
			}
		}
	}

	return root, count
}

func TestDepthFirst_MatchesRecursion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root, count := randomTree(t)

		var recursive []string
		Walk[game](root, func(n Node[game], _ int) bool {
			recursive = append(recursive, n.Name())
			return true
		})

		iterative := names(iterator.Collect[Node[game]](root.Traverse()))

		if len(iterative) != count {
			t.Fatalf("visited %d nodes, want %d", len(iterative), count)
		}
		seen := make(map[string]bool, count)
		for i := range iterative {
			if iterative[i] != recursive[i] {
				t.Fatalf("position %d: iterative %s, recursive %s", i, iterative[i], recursive[i])
			}
			if seen[iterative[i]] {
				t.Fatalf("%s visited twice", iterative[i])
			}
			seen[iterative[i]] = true
		}
		if iterative[0] != "n0" {
			t.Fatalf("root not first: %s", iterative[0])
		}
	})
}

func TestFind_MatchesFilter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root, _ := randomTree(t)
		threshold := rapid.IntRange(0, 60).Draw(t, "threshold")
		match := func(g game) bool { return g.rating >= threshold }

		found := Find[game](root, match)
		filtered := Filter[game](root.Traverse(), match)

		if len(found) != len(filtered) {
			t.Fatalf("Find got %d, Filter got %d", len(found), len(filtered))
		}
		for i := range found {
			if found[i] != filtered[i] {
				t.Fatalf("position %d: %v vs %v", i, found[i], filtered[i])
			}
		}
	})
}
