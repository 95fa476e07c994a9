package menu

import (
	"strings"

	"go.lepak.sg/patterns/iterator"
)

var (
	_ iterator.Aggregate[Item] = (*PancakeHouseMenu)(nil)
	_ iterator.Aggregate[Item] = (*DinerMenu)(nil)
	_ iterator.Aggregate[Item] = (*CafeMenu)(nil)
)

// PancakeHouseMenu keeps its items in a growable list.
// The zero PancakeHouseMenu is an empty menu ready to use.
type PancakeHouseMenu struct {
	items iterator.List[Item]
}

func (m *PancakeHouseMenu) AddItem(item Item) {
	m.items.Add(item)
}

func (m *PancakeHouseMenu) Iterator() iterator.Iterator[Item] {
	return m.items.Iterator()
}

// DefaultDinerCapacity is how many items a diner menu holds by default.
const DefaultDinerCapacity = 6

// DinerMenu holds a fixed number of items.
type DinerMenu struct {
	items *iterator.Array[Item]
}

// NewDinerMenu returns a menu with room for capacity items.
// If capacity is 0, DefaultDinerCapacity is used.
func NewDinerMenu(capacity int) *DinerMenu {
	if capacity == 0 {
		capacity = DefaultDinerCapacity
	}

	return &DinerMenu{
		items: iterator.NewArray[Item](capacity),
	}
}

// AddItem adds item to the menu, or returns an error wrapping
// iterator.ErrCapacityExceeded if the menu is full.
func (m *DinerMenu) AddItem(item Item) error {
	return m.items.Add(item)
}

func (m *DinerMenu) Iterator() iterator.Iterator[Item] {
	return m.items.Iterator()
}

// CafeMenu keeps one item per name. Adding an item with a name
// already on the menu replaces it.
type CafeMenu struct {
	items *iterator.Keyed[string, Item]
}

func NewCafeMenu() *CafeMenu {
	return &CafeMenu{
		items: iterator.NewKeyed[string](byName),
	}
}

func byName(a, b Item) bool {
	return strings.ToLower(a.name) < strings.ToLower(b.name)
}

func (m *CafeMenu) AddItem(item Item) {
	m.items.Set(item.name, item)
}

// RemoveItem takes the item called name off the menu and reports
// whether it was there.
func (m *CafeMenu) RemoveItem(name string) bool {
	return m.items.Delete(name)
}

// Iterator yields the items in name order, ignoring case.
func (m *CafeMenu) Iterator() iterator.Iterator[Item] {
	return m.items.Iterator()
}
