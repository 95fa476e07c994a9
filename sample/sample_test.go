package sample

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/patterns/casino"
	"go.lepak.sg/patterns/composite"
	"go.lepak.sg/patterns/iterator"
	"go.lepak.sg/patterns/menu"
	"go.lepak.sg/patterns/must"
)

func testContext(t *testing.T) context.Context {
	l := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return l.WithContext(context.Background())
}

func gameNames(games []casino.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Name()
	}
	return out
}

func itemNames(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name()
	}
	return out
}

func TestCasino(t *testing.T) {
	root := Casino(testContext(t))

	var sections []string
	composite.Walk[casino.Game](root, func(n casino.Component, depth int) bool {
		if _, ok := composite.AsContainer(n); ok {
			sections = append(sections, strings.Repeat(" ", depth)+n.Name())
		}
		return true
	})
	assert.Equal(t, []string{
		"RTG CASINO",
		" SLOT GAMES",
		"  PROMOTIONAL GAMES",
		" TABLE GAMES",
		" LIVE CASINO",
	}, sections)

	m := casino.NewManager(root)
	assert.Equal(t, []string{
		"Fu Long Plinko",
		"Blackjack",
		"European Roulette",
		"Baccarat",
		"Texas Hold'em Poker",
		"Craps",
		"Live VIP Blackjack",
		"Live Roulette",
		"Live Baccarat",
	}, gameNames(m.HighRTPGames(casino.DefaultHighRTP)))
	assert.Len(t, m.GamesByProvider("evolution"), 3)
}

func TestCasino_Fresh(t *testing.T) {
	a := Casino(testContext(t))
	b := Casino(testContext(t))
	require.NotSame(t, a, b)

	require.True(t, a.Remove(must.Get(a.ChildAt(0))))
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Len())
}

func TestCatalogs(t *testing.T) {
	root := Casino(testContext(t))

	slots := SlotsCatalog(root)
	assert.Equal(t, []string{
		"Doragon's Gems",
		"Whispers of Seasons",
		"Plentiful Treasure",
		"Spirit of the Inca",
	}, gameNames(iterator.Collect(slots.Iterator())))

	table, err := TableGamesCatalog(root)
	require.NoError(t, err)
	assert.Equal(t, TableGamesCapacity, table.Len())

	all := GameCatalog(root)
	assert.Equal(t, 15, all.Len())
	g, ok := all.Get("doragon-s-gems")
	require.True(t, ok)
	assert.Equal(t, "Doragon's Gems", g.Name())

	got := gameNames(iterator.Collect(all.Iterator()))
	assert.Equal(t, []string{"Blackjack", "Live VIP Blackjack", "Baccarat", "Live Baccarat"}, got[:4])
	assert.Equal(t, "Spirit of the Inca", got[len(got)-1])
}

func TestTableGamesCatalog_TooMany(t *testing.T) {
	root := casino.NewCategory("ROOT", "")
	for i := 0; i <= TableGamesCapacity; i++ {
		g := casino.NewGame("Table "+string(rune('A'+i)), "", "Table", casino.DefaultHighRTP, casino.DefaultHighRTP)
		require.NoError(t, root.Add(casino.GameLeaf(g)))
	}

	_, err := TableGamesCatalog(root)
	assert.ErrorIs(t, err, iterator.ErrCapacityExceeded)
	assert.ErrorContains(t, err, `"Table F"`)
}

func TestMenus(t *testing.T) {
	root := Menus(testContext(t))
	ws := menu.NewWaitress(root)

	assert.Equal(t, []string{
		"K&B's Pancake Breakfast",
		"Blueberry Pancakes",
		"Waffles",
		"Vegetarian BLT",
		"Apple Pie",
		"Cheesecake",
		"Sorbet",
		"Veggie Burger and Air Fries",
		"Burrito",
	}, itemNames(ws.VegetarianItems()))

	pancake := PancakeHouseMenu(root)
	assert.Len(t, iterator.Collect(pancake.Iterator()), 4)

	diner, err := DinerMenu(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegetarian BLT", "BLT", "Soup of the day", "Hotdog"},
		itemNames(iterator.Collect(diner.Iterator())), "sub-menus are left out")

	cafe := CafeMenu(root)
	assert.Equal(t, []string{"Burrito", "Soup of the day", "Veggie Burger and Air Fries"},
		itemNames(iterator.Collect(cafe.Iterator())))

	assert.Nil(t, itemsOf(root, "BRUNCH MENU"))
}

func TestLoadCasino_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty",
			doc:     "",
			wantErr: ErrBadData,
		},
		{
			name:    "root is a game",
			doc:     "game: Keno\nrtp: '90'\nmin_bet: '1'\n",
			wantErr: ErrBadData,
		},
		{
			name:    "unknown field",
			doc:     "section: A\ncolour: red\n",
			wantMsg: "colour",
		},
		{
			name:    "section and game",
			doc:     "section: A\nchildren:\n  - section: B\n    game: C\n",
			wantErr: ErrBadData,
			wantMsg: `in "A"`,
		},
		{
			name:    "neither",
			doc:     "section: A\nchildren:\n  - description: lost\n",
			wantErr: ErrBadData,
		},
		{
			name:    "bad rtp",
			doc:     "section: A\nchildren:\n  - game: Keno\n    rtp: lots\n    min_bet: '1'\n",
			wantErr: ErrBadData,
			wantMsg: "rtp of \"Keno\"",
		},
		{
			name:    "game with children",
			doc:     "section: A\nchildren:\n  - game: Keno\n    rtp: '90'\n    min_bet: '1'\n    children:\n      - section: B\n",
			wantErr: ErrBadData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadCasino(testContext(t), strings.NewReader(tt.doc))
			assert.Nil(t, c)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoadMenus_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "root is an item",
			doc:  "item: Toast\nprice: '1'\n",
		},
		{
			name: "bad price",
			doc:  "menu: A\nchildren:\n  - item: Toast\n    price: free\n",
		},
		{
			name: "menu and item",
			doc:  "menu: A\nchildren:\n  - menu: B\n    item: Toast\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMenus(testContext(t), strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrBadData)
		})
	}
}

func TestGameID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Doragon's Gems", "doragon-s-gems"},
		{"Texas Hold'em Poker", "texas-hold-em-poker"},
		{"  Craps  ", "craps"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GameID(tt.name))
		})
	}
}
