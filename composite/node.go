// Package composite builds trees out of leaves, which carry one item
// each, and containers, which hold an ordered list of child nodes.
// Both kinds of node can be displayed, searched and traversed the
// same way.
package composite

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	// ErrUnsupported is returned when an operation is asked of a node
	// kind that does not have it, such as adding a child to a leaf.
	ErrUnsupported = errors.New("operation not supported by node")
	// ErrIndexOutOfRange is returned by ChildAt for a bad index.
	ErrIndexOutOfRange = errors.New("child index out of range")
	// ErrCycleDetected is returned when adding a child would make a
	// container its own descendant.
	ErrCycleDetected = errors.New("cycle detected")
)

// Item is what a Leaf holds.
type Item interface {
	Name() string
	Description() string
}

// Node is either a *Leaf or a *Container. No other implementations
// exist, so a type switch over those two is exhaustive.
// The methods here are the ones valid for both kinds; the item of a
// leaf and the children of a container are reached through ItemOf
// and AsContainer.
type Node[I Item] interface {
	Name() string
	Description() string
	// Traverse returns a fresh depth-first cursor rooted at this node.
	Traverse() *DepthFirst[I]

	node()
}

var (
	_ Node[Item] = (*Leaf[Item])(nil)
	_ Node[Item] = (*Container[Item])(nil)
)

// Leaf is a node with exactly one item and no children.
type Leaf[I Item] struct {
	item I
}

// LeafOf returns a new Leaf holding item.
func LeafOf[I Item](item I) *Leaf[I] {
	return &Leaf[I]{
		item: item,
	}
}

// Item returns the item held by the leaf.
func (l *Leaf[I]) Item() I {
	return l.item
}

func (l *Leaf[_]) Name() string {
	return l.item.Name()
}

func (l *Leaf[_]) Description() string {
	return l.item.Description()
}

// Traverse returns a cursor that yields only this leaf.
func (l *Leaf[I]) Traverse() *DepthFirst[I] {
	return NewDepthFirst[I](l)
}

func (*Leaf[_]) node() {}

// Container is a node with an ordered list of children.
// Children are displayed and traversed in the order they were added.
// The same node may be added more than once.
// Container is not safe for concurrent use.
type Container[I Item] struct {
	name, description string
	children          []Node[I]
}

// NewContainer returns an empty Container.
func NewContainer[I Item](name, description string) *Container[I] {
	return &Container[I]{
		name:        name,
		description: description,
	}
}

func (c *Container[_]) Name() string {
	return c.name
}

func (c *Container[_]) Description() string {
	return c.description
}

// Traverse returns a depth-first cursor over the container
// and all of its descendants.
func (c *Container[I]) Traverse() *DepthFirst[I] {
	return NewDepthFirst[I](c)
}

func (*Container[_]) node() {}

// Add appends children to the container, in order.
// If a child is the container itself or has the container somewhere
// in its subtree, that child and any after it are not added, and
// an error wrapping ErrCycleDetected is returned.
func (c *Container[I]) Add(children ...Node[I]) error {
	for _, child := range children {
		if child == nil {
			panic("nil child")
		}

		if c.reachableFrom(child) {
			return fmt.Errorf("%w: adding %q to %q", ErrCycleDetected, child.Name(), c.name)
		}

		c.children = append(c.children, child)
	}

	return nil
}

// reachableFrom returns true if c is n or a descendant of n.
func (c *Container[I]) reachableFrom(n Node[I]) bool {
	var self Node[I] = c
	it := n.Traverse()
	for it.HasNext() {
		next, _ := it.Next()
		if next == self {
			return true
		}
	}
	return false
}

// Remove removes the first occurrence of child from the container.
// Nodes are compared by identity. Remove returns true if the child
// was found.
func (c *Container[I]) Remove(child Node[I]) bool {
	i := slices.Index(c.children, child)
	if i == -1 {
		return false
	}

	copy(c.children[i:], c.children[i+1:])
	// don't keep the last child alive through the backing array
	c.children[len(c.children)-1] = nil
	c.children = c.children[:len(c.children)-1]
	return true
}

// ChildAt returns the i-th child of the container.
// If i < 0 or i >= Len(), an error wrapping ErrIndexOutOfRange
// is returned.
func (c *Container[I]) ChildAt(i int) (Node[I], error) {
	if i < 0 || i >= len(c.children) {
		return nil, fmt.Errorf("%w: %d not in [0, %d) for %q",
			ErrIndexOutOfRange, i, len(c.children), c.name)
	}

	return c.children[i], nil
}

// Len returns the number of direct children.
func (c *Container[_]) Len() int {
	return len(c.children)
}

// Children returns a copy of the direct children, in order.
func (c *Container[I]) Children() []Node[I] {
	return slices.Clone(c.children)
}
