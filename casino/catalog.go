package casino

import (
	"go.lepak.sg/patterns/iterator"
)

var (
	_ iterator.Aggregate[Game] = (*SlotsCatalog)(nil)
	_ iterator.Aggregate[Game] = (*TableGamesCatalog)(nil)
	_ iterator.Aggregate[Game] = (*GameCatalog)(nil)
)

// SlotsCatalog keeps games in a growable list.
// The zero SlotsCatalog may be used immediately.
type SlotsCatalog struct {
	games iterator.List[Game]
}

func (c *SlotsCatalog) AddGame(g Game) {
	c.games.Add(g)
}

func (c *SlotsCatalog) Len() int {
	return c.games.Len()
}

// Iterator yields games in the order they were added.
func (c *SlotsCatalog) Iterator() iterator.Iterator[Game] {
	return c.games.Iterator()
}

// TableGamesCatalog keeps at most a fixed number of games.
type TableGamesCatalog struct {
	games *iterator.Array[Game]
}

func NewTableGamesCatalog(capacity int) *TableGamesCatalog {
	return &TableGamesCatalog{
		games: iterator.NewArray[Game](capacity),
	}
}

// AddGame adds g to the catalog. Once the catalog is full, AddGame
// returns an error wrapping iterator.ErrCapacityExceeded.
func (c *TableGamesCatalog) AddGame(g Game) error {
	return c.games.Add(g)
}

func (c *TableGamesCatalog) Len() int {
	return c.games.Len()
}

// Iterator yields games in the order they were added.
func (c *TableGamesCatalog) Iterator() iterator.Iterator[Game] {
	return c.games.Iterator()
}

// GameCatalog indexes games by an ID.
type GameCatalog struct {
	games *iterator.Keyed[string, Game]
}

func NewGameCatalog() *GameCatalog {
	return &GameCatalog{
		games: iterator.NewKeyed[string](byRTPThenName),
	}
}

// byRTPThenName puts the best paying games first.
func byRTPThenName(a, b Game) bool {
	if c := a.rtp.Cmp(b.rtp); c != 0 {
		return c > 0
	}
	return a.name < b.name
}

// Add adds g under id, replacing any game already there.
func (c *GameCatalog) Add(id string, g Game) {
	c.games.Set(id, g)
}

func (c *GameCatalog) Get(id string) (Game, bool) {
	return c.games.Get(id)
}

func (c *GameCatalog) Len() int {
	return c.games.Len()
}

// Iterator yields games by descending RTP. Games with the same RTP
// come in name order, and then in ID order.
func (c *GameCatalog) Iterator() iterator.Iterator[Game] {
	return c.games.Iterator()
}
