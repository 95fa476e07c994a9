package composite

import "fmt"

// ItemOf returns the item of n if n is a leaf.
// For a container, ok is false and item is the zero I.
func ItemOf[I Item](n Node[I]) (item I, ok bool) {
	l, ok := n.(*Leaf[I])
	if !ok {
		return
	}
	return l.item, true
}

// AsContainer returns n as a *Container if it is one.
func AsContainer[I Item](n Node[I]) (*Container[I], bool) {
	c, ok := n.(*Container[I])
	return c, ok
}

// The functions below are for callers that hold a Node without
// knowing its kind. Code that knows it has a *Container should call
// the methods directly.

// Add adds child to parent. If parent is a leaf, an error wrapping
// ErrUnsupported is returned.
func Add[I Item](parent, child Node[I]) error {
	switch p := parent.(type) {
	case *Container[I]:
		return p.Add(child)
	case *Leaf[I]:
		return unsupported("Add", p)
	default:
		panic("unhandled node kind")
	}
}

// Remove removes child from parent. If parent is a leaf, an error
// wrapping ErrUnsupported is returned.
func Remove[I Item](parent, child Node[I]) (bool, error) {
	switch p := parent.(type) {
	case *Container[I]:
		return p.Remove(child), nil
	case *Leaf[I]:
		return false, unsupported("Remove", p)
	default:
		panic("unhandled node kind")
	}
}

// ChildAt returns the i-th child of n. If n is a leaf, an error
// wrapping ErrUnsupported is returned; if i is out of range, one
// wrapping ErrIndexOutOfRange.
func ChildAt[I Item](n Node[I], i int) (Node[I], error) {
	switch p := n.(type) {
	case *Container[I]:
		return p.ChildAt(i)
	case *Leaf[I]:
		return nil, unsupported("ChildAt", p)
	default:
		panic("unhandled node kind")
	}
}

func unsupported[I Item](op string, l *Leaf[I]) error {
	return fmt.Errorf("%w: %s on leaf %q", ErrUnsupported, op, l.Name())
}
