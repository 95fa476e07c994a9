// Package menu holds restaurant menus, both as flat catalogs with
// their own storage and as a tree of menus and sub-menus.
package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.lepak.sg/patterns/composite"
)

// Item is one dish. Items never change once made.
type Item struct {
	name, description string
	vegetarian        bool
	price             decimal.Decimal
}

var _ composite.Item = Item{}

func NewItem(name, description string, vegetarian bool, price decimal.Decimal) Item {
	return Item{
		name:        name,
		description: description,
		vegetarian:  vegetarian,
		price:       price,
	}
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Description() string {
	return i.description
}

func (i Item) Vegetarian() bool {
	return i.vegetarian
}

func (i Item) Price() decimal.Decimal {
	return i.price
}

// String formats the item like:
//
//	Pancakes(v), $2.99 -- with blueberries
func (i Item) String() string {
	var sb strings.Builder

	sb.WriteString(i.name)
	if i.vegetarian {
		sb.WriteString("(v)")
	}
	fmt.Fprintf(&sb, ", $%s", i.price.StringFixed(2))
	if i.description != "" {
		sb.WriteString(" -- ")
		sb.WriteString(i.description)
	}

	return sb.String()
}
