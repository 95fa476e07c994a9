package casino

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.lepak.sg/patterns/composite"
)

type (
	// Component is a node of the game tree: a *Category or a leaf
	// holding one Game.
	Component = composite.Node[Game]
	// Category groups games and other categories.
	Category = composite.Container[Game]
)

// DefaultHighRTP is the RTP a game must beat to be listed as high RTP.
var DefaultHighRTP = decimal.NewFromInt(97)

func NewCategory(name, description string) *Category {
	return composite.NewContainer[Game](name, description)
}

// GameLeaf wraps g so it can be added to a Category.
func GameLeaf(g Game) *composite.Leaf[Game] {
	return composite.LeafOf(g)
}

// Manager answers questions about a whole tree of games,
// without caring how deeply they are nested.
type Manager struct {
	all Component
}

func NewManager(all Component) *Manager {
	if all == nil {
		panic("nil game tree")
	}

	return &Manager{
		all: all,
	}
}

// ShowAllGames writes the whole tree to w.
func (m *Manager) ShowAllGames(w io.Writer) error {
	return composite.Display(w, m.all)
}

// HighRTPGames returns the games with an RTP strictly above min,
// in depth-first order.
func (m *Manager) HighRTPGames(min decimal.Decimal) []Game {
	return composite.Filter[Game](m.all.Traverse(), func(g Game) bool {
		return g.rtp.GreaterThan(min)
	})
}

func (m *Manager) ShowHighRTPGames(w io.Writer, min decimal.Decimal) error {
	title := fmt.Sprintf("HIGH RTP GAMES (>%s%%)", min.String())
	return writeGames(w, title, m.HighRTPGames(min))
}

// GamesByCategory returns the games whose category is category,
// ignoring case.
func (m *Manager) GamesByCategory(category string) []Game {
	return composite.Filter[Game](m.all.Traverse(), func(g Game) bool {
		return strings.EqualFold(g.category, category)
	})
}

func (m *Manager) ShowGamesByCategory(w io.Writer, category string) error {
	title := "GAMES BY CATEGORY: " + strings.ToUpper(category)
	return writeGames(w, title, m.GamesByCategory(category))
}

// GamesByProvider returns the games made by provider, ignoring case.
func (m *Manager) GamesByProvider(provider string) []Game {
	return composite.Filter[Game](m.all.Traverse(), func(g Game) bool {
		return g.provider != "" && strings.EqualFold(g.provider, provider)
	})
}

func (m *Manager) ShowGamesByProvider(w io.Writer, provider string) error {
	return writeGames(w, "GAMES BY "+provider, m.GamesByProvider(provider))
}

// FindGamesByRTP returns the games under root with an RTP of at
// least min. Unlike HighRTPGames, the bound is inclusive.
func FindGamesByRTP(root Component, min decimal.Decimal) []Game {
	return composite.Find(root, func(g Game) bool {
		return g.rtp.GreaterThanOrEqual(min)
	})
}

const rule = "══════════════════════════════════"

func writeGames(w io.Writer, title string, games []Game) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n%s\n", title, rule)
	if len(games) == 0 {
		fmt.Fprintln(bw, "  (none)")
	}
	for _, g := range games {
		fmt.Fprintf(bw, "  %s\n", g)
	}

	return bw.Flush()
}
