package sample

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"go.lepak.sg/patterns/composite"
	"go.lepak.sg/patterns/menu"
)

// Names of the menus in the embedded menu tree.
const (
	PancakeHouseMenuName = "PANCAKE HOUSE MENU"
	DinerMenuName        = "DINER MENU"
	CafeMenuName         = "CAFE MENU"
)

type menuNode struct {
	Menu        string     `yaml:"menu"`
	Item        string     `yaml:"item"`
	Description string     `yaml:"description"`
	Vegetarian  bool       `yaml:"vegetarian"`
	Price       string     `yaml:"price"`
	Children    []menuNode `yaml:"children"`
}

// LoadMenus reads a menu tree from r. The root must be a menu.
func LoadMenus(ctx context.Context, r io.Reader) (*menu.Menu, error) {
	var root menuNode
	if err := decode(r, &root); err != nil {
		return nil, fmt.Errorf("loading menus: %w", err)
	}

	if root.Menu == "" {
		return nil, fmt.Errorf("%w: menu root must be a menu", ErrBadData)
	}

	return root.menu(ctx)
}

// Menus returns the embedded menu tree. Each call builds a new tree.
func Menus(ctx context.Context) *menu.Menu {
	return loadEmbedded(ctx, "menu.yaml", LoadMenus)
}

func (n *menuNode) menu(ctx context.Context) (*menu.Menu, error) {
	m := menu.NewMenu(n.Menu, n.Description)

	for i := range n.Children {
		child, err := n.Children[i].component(ctx)
		if err != nil {
			return nil, fmt.Errorf("in %q: %w", n.Menu, err)
		}
		if err := m.Add(child); err != nil {
			return nil, err
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("menu", n.Menu).
		Int("children", m.Len()).
		Msg("built menu")
	return m, nil
}

func (n *menuNode) component(ctx context.Context) (menu.Component, error) {
	switch {
	case n.Menu != "" && n.Item != "":
		return nil, fmt.Errorf("%w: %q is both a menu and an item", ErrBadData, n.Menu)
	case n.Menu != "":
		return n.menu(ctx)
	case n.Item != "":
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%w: item %q has children", ErrBadData, n.Item)
		}
		price, err := decimal.NewFromString(n.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: price of %q: %v", ErrBadData, n.Item, err)
		}
		return menu.ItemLeaf(menu.NewItem(n.Item, n.Description, n.Vegetarian, price)), nil
	default:
		return nil, fmt.Errorf("%w: entry has neither menu nor item", ErrBadData)
	}
}

// itemsOf returns the items placed directly on the menu called name,
// leaving out those in its sub-menus. It is nil if there is no such menu.
func itemsOf(root menu.Component, name string) []menu.Item {
	var found *menu.Menu
	composite.Walk(root, func(n menu.Component, _ int) bool {
		if m, ok := composite.AsContainer(n); ok && m.Name() == name {
			found = m
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}

	var items []menu.Item
	for _, child := range found.Children() {
		if item, ok := composite.ItemOf(child); ok {
			items = append(items, item)
		}
	}
	return items
}

// PancakeHouseMenu copies the items of the pancake house menu
// under root into a PancakeHouseMenu.
func PancakeHouseMenu(root menu.Component) *menu.PancakeHouseMenu {
	var m menu.PancakeHouseMenu
	for _, item := range itemsOf(root, PancakeHouseMenuName) {
		m.AddItem(item)
	}
	return &m
}

// DinerMenu copies the items of the diner menu under root into a
// DinerMenu of the default size. It fails if they do not fit.
func DinerMenu(root menu.Component) (*menu.DinerMenu, error) {
	m := menu.NewDinerMenu(0)
	for _, item := range itemsOf(root, DinerMenuName) {
		if err := m.AddItem(item); err != nil {
			return nil, fmt.Errorf("adding %q: %w", item.Name(), err)
		}
	}
	return m, nil
}

// CafeMenu copies the items of the cafe menu under root into a CafeMenu.
func CafeMenu(root menu.Component) *menu.CafeMenu {
	m := menu.NewCafeMenu()
	for _, item := range itemsOf(root, CafeMenuName) {
		m.AddItem(item)
	}
	return m
}
