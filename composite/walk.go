package composite

import (
	"fmt"
	"io"
	"strings"

	"go.lepak.sg/patterns/iterator"
)

// Walk applies f to root and then to every node below it, in
// depth-first order. depth is 0 for root, 1 for its children and so on.
// If f returns false, the walk is stopped early.
func Walk[I Item](root Node[I], f func(n Node[I], depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, f)
}

func walk[I Item](n Node[I], depth int, f func(Node[I], int) bool) bool {
	// Classic recursive pre-order walk.
	// Compare this to DepthFirst which is not recursive
	if !f(n, depth) {
		return false
	}

	if c, ok := n.(*Container[I]); ok {
		for _, child := range c.children {
			if !walk(child, depth+1, f) {
				return false
			}
		}
	}

	return true
}

// Find returns the items of all leaves under root for which match
// returns true, in depth-first order. Containers are never matched.
func Find[I Item](root Node[I], match func(item I) bool) []I {
	switch n := root.(type) {
	case nil:
		return nil
	case *Leaf[I]:
		if match(n.item) {
			return []I{n.item}
		}
		return nil
	case *Container[I]:
		var out []I
		for _, child := range n.children {
			out = append(out, Find(child, match)...)
		}
		return out
	default:
		panic("unhandled node kind")
	}
}

// Filter drains it and returns the items of the leaves it yields
// for which match returns true. Containers are skipped.
func Filter[I Item](it iterator.Iterator[Node[I]], match func(item I) bool) []I {
	var out []I
	iterator.ForEach(it, func(n Node[I]) bool {
		if item, ok := ItemOf(n); ok && match(item) {
			out = append(out, item)
		}
		return true
	})
	return out
}

// String returns a string representation of the tree rooted at root,
// one line per node. Containers are shown as "name - description".
// Leaves are shown with their item's String method if it has one,
// or their name otherwise.
// A small casino would look like this:
//
//	CASINO - All games
//	├─ SLOTS - Slot machines
//	│  ├─ Book of Dead
//	│  └─ Starburst
//	└─ TABLE - Table games
//	   └─ Blackjack
func String[I Item](root Node[I]) string {
	var sb strings.Builder

	if root == nil {
		return ""
	}

	printvisit(&sb, root, "", true, false)

	return sb.String()
}

// Display writes String(root) to w.
func Display[I Item](w io.Writer, root Node[I]) error {
	_, err := io.WriteString(w, String(root))
	return err
}

const (
	treeMidBranch    = "├─ "
	treeLastBranch   = "└─ "
	treeMidContinue  = "│  "
	treeLastContinue = "   "
)

func printvisit[I Item](
	sb *strings.Builder, n Node[I], prefix string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
	}
	sb.WriteString(label(n))
	sb.WriteRune('\n')

	if c, ok := n.(*Container[I]); ok {
		for i, child := range c.children {
			printvisit(sb, child, prefix, false, i < len(c.children)-1)
		}
	}
}

func label[I Item](n Node[I]) string {
	switch n := n.(type) {
	case *Leaf[I]:
		if s, ok := any(n.item).(fmt.Stringer); ok {
			return s.String()
		}
		return n.Name()
	case *Container[I]:
		if n.description == "" {
			return n.name
		}
		return n.name + " - " + n.description
	default:
		panic("unhandled node kind")
	}
}
