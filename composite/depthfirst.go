package composite

import (
	"fmt"

	"go.lepak.sg/patterns/iterator"
)

var _ iterator.Iterator[Node[Item]] = (*DepthFirst[Item])(nil)

// DepthFirst is a pre-order cursor over a tree of nodes.
// It yields a node, then the whole subtree of its first child,
// then the whole subtree of its second child, and so on.
// The usage should be pretty familiar:
//
//	i := root.Traverse()
//	for i.HasNext() {
//		n, _ := i.Next()
//		... do stuff with n ...
//	}
//
// Every node is yielded, whatever its kind; callers that only care
// about leaves should skip the rest with ItemOf.
// The iterator may be abandoned at any time but cannot be rewound.
// The result of mutating the tree while iterating over it is undefined.
type DepthFirst[I Item] struct {
	stack []Node[I]
}

// Recursive pre-order traversal looks like this:
//	func visit(n Node, f func(Node)) {
//		f(n)
//		for _, child := range n.children {
//			visit(child, f)
//		}
//	}
// Each call to Next is one call to f. Instead of recursing, the
// children still to be visited are kept in i.stack. They are
// pushed last child first, so the first child is on top and is
// what the following Next will pop.
// Nothing below a node is expanded until that node is yielded.

// NewDepthFirst returns a new DepthFirst cursor over the tree rooted
// at root. A nil root gives a cursor with nothing in it.
func NewDepthFirst[I Item](root Node[I]) *DepthFirst[I] {
	d := &DepthFirst[I]{}
	if root != nil {
		d.stack = append(d.stack, root)
	}
	return d
}

// HasNext returns true if there is another node to yield.
func (d *DepthFirst[I]) HasNext() bool {
	return d != nil && len(d.stack) > 0
}

// Next returns the next node in pre-order.
// If there are no more nodes, an error wrapping
// iterator.ErrExhausted is returned.
func (d *DepthFirst[I]) Next() (Node[I], error) {
	if !d.HasNext() {
		return nil, fmt.Errorf("%w: depth-first traversal finished", iterator.ErrExhausted)
	}

	pop := d.stack[len(d.stack)-1]
	d.stack[len(d.stack)-1] = nil
	d.stack = d.stack[:len(d.stack)-1]

	if c, ok := pop.(*Container[I]); ok {
		for i := len(c.children) - 1; i >= 0; i-- {
			d.stack = append(d.stack, c.children[i])
		}
	}

	return pop, nil
}
