package menu

import (
	"bufio"
	"fmt"
	"io"

	"go.lepak.sg/patterns/composite"
	"go.lepak.sg/patterns/iterator"
)

type (
	// Component is a node of the menu tree: a *Menu or a leaf
	// holding one Item.
	Component = composite.Node[Item]
	// Menu holds items and sub-menus.
	Menu = composite.Container[Item]
)

func NewMenu(name, description string) *Menu {
	return composite.NewContainer[Item](name, description)
}

// ItemLeaf wraps item so it can be added to a Menu.
func ItemLeaf(item Item) *composite.Leaf[Item] {
	return composite.LeafOf(item)
}

// Waitress prints menus for customers.
type Waitress struct {
	all Component
}

// NewWaitress returns a Waitress serving every menu under all.
func NewWaitress(all Component) *Waitress {
	if all == nil {
		panic("nil menu tree")
	}

	return &Waitress{
		all: all,
	}
}

// PrintMenu writes the whole menu tree to w.
func (ws *Waitress) PrintMenu(w io.Writer) error {
	return composite.Display(w, ws.all)
}

// VegetarianItems returns every vegetarian item, from every menu
// and sub-menu, in depth-first order.
func (ws *Waitress) VegetarianItems() []Item {
	return composite.Filter[Item](ws.all.Traverse(), Item.Vegetarian)
}

func (ws *Waitress) PrintVegetarianMenu(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "VEGETARIAN MENU\n----\n")
	for _, item := range ws.VegetarianItems() {
		fmt.Fprintf(bw, "  %s\n", item)
	}

	return bw.Flush()
}

// PrintMenus writes each menu to w, a blank line between each.
// The menus may each store their items however they like.
func PrintMenus(w io.Writer, menus ...iterator.Aggregate[Item]) error {
	for i, m := range menus {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := PrintIterator(w, m.Iterator()); err != nil {
			return err
		}
	}

	return nil
}

// PrintIterator drains it, writing one item per line.
func PrintIterator(w io.Writer, it iterator.Iterator[Item]) error {
	bw := bufio.NewWriter(w)

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "  %s - $%s\n", item.name, item.price.StringFixed(2))
	}

	return bw.Flush()
}
