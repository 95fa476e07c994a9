package sample

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"go.lepak.sg/patterns/casino"
	"go.lepak.sg/patterns/composite"
)

type gameNode struct {
	Section     string     `yaml:"section"`
	Game        string     `yaml:"game"`
	Description string     `yaml:"description"`
	Category    string     `yaml:"category"`
	Provider    string     `yaml:"provider"`
	RTP         string     `yaml:"rtp"`
	MinBet      string     `yaml:"min_bet"`
	Children    []gameNode `yaml:"children"`
}

// LoadCasino reads a game tree from r. The root must be a section.
func LoadCasino(ctx context.Context, r io.Reader) (*casino.Category, error) {
	var root gameNode
	if err := decode(r, &root); err != nil {
		return nil, fmt.Errorf("loading casino: %w", err)
	}

	if root.Section == "" {
		return nil, fmt.Errorf("%w: casino root must be a section", ErrBadData)
	}

	return root.category(ctx)
}

// Casino returns the embedded game tree. Each call builds a new tree.
func Casino(ctx context.Context) *casino.Category {
	return loadEmbedded(ctx, "casino.yaml", LoadCasino)
}

func (n *gameNode) category(ctx context.Context) (*casino.Category, error) {
	c := casino.NewCategory(n.Section, n.Description)

	for i := range n.Children {
		child, err := n.Children[i].component(ctx)
		if err != nil {
			return nil, fmt.Errorf("in %q: %w", n.Section, err)
		}
		if err := c.Add(child); err != nil {
			return nil, err
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("section", n.Section).
		Int("children", c.Len()).
		Msg("built category")
	return c, nil
}

func (n *gameNode) component(ctx context.Context) (casino.Component, error) {
	switch {
	case n.Section != "" && n.Game != "":
		return nil, fmt.Errorf("%w: %q is both a section and a game", ErrBadData, n.Section)
	case n.Section != "":
		return n.category(ctx)
	case n.Game != "":
		g, err := n.game()
		if err != nil {
			return nil, err
		}
		return casino.GameLeaf(g), nil
	default:
		return nil, fmt.Errorf("%w: entry has neither section nor game", ErrBadData)
	}
}

func (n *gameNode) game() (casino.Game, error) {
	if len(n.Children) > 0 {
		return casino.Game{}, fmt.Errorf("%w: game %q has children", ErrBadData, n.Game)
	}

	rtp, err := decimal.NewFromString(n.RTP)
	if err != nil {
		return casino.Game{}, fmt.Errorf("%w: rtp of %q: %v", ErrBadData, n.Game, err)
	}
	minBet, err := decimal.NewFromString(n.MinBet)
	if err != nil {
		return casino.Game{}, fmt.Errorf("%w: min_bet of %q: %v", ErrBadData, n.Game, err)
	}

	g := casino.NewGame(n.Game, n.Description, n.Category, rtp, minBet)
	if n.Provider != "" {
		g = g.WithProvider(n.Provider)
	}
	return g, nil
}

// TableGamesCapacity is the size of the catalog built by TableGamesCatalog.
const TableGamesCapacity = 5

// SlotsCatalog collects the slot games under root.
func SlotsCatalog(root casino.Component) *casino.SlotsCatalog {
	var c casino.SlotsCatalog
	for _, g := range casino.NewManager(root).GamesByCategory("Slots") {
		c.AddGame(g)
	}
	return &c
}

// TableGamesCatalog collects the table games under root into a
// catalog of TableGamesCapacity games. It fails if there are more.
func TableGamesCatalog(root casino.Component) (*casino.TableGamesCatalog, error) {
	c := casino.NewTableGamesCatalog(TableGamesCapacity)
	for _, g := range casino.NewManager(root).GamesByCategory("Table") {
		if err := c.AddGame(g); err != nil {
			return nil, fmt.Errorf("adding %q: %w", g.Name(), err)
		}
	}
	return c, nil
}

// GameCatalog indexes every game under root by GameID.
func GameCatalog(root casino.Component) *casino.GameCatalog {
	c := casino.NewGameCatalog()
	all := composite.Find(root, func(casino.Game) bool { return true })
	for _, g := range all {
		c.Add(GameID(g.Name()), g)
	}
	return c
}

// GameID turns a game name into a lower case ID, such as
// "doragon-s-gems" for "Doragon's Gems".
func GameID(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "-")
}
