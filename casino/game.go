// Package casino arranges casino games into catalogs and a category tree.
package casino

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.lepak.sg/patterns/composite"
)

// Game is one casino game. Games are values and never change once made.
type Game struct {
	name, description string
	category          string
	provider          string
	// RTP is a percentage
	rtp, minBet decimal.Decimal
}

var _ composite.Item = Game{}

// NewGame returns a Game with no provider.
func NewGame(name, description, category string, rtp, minBet decimal.Decimal) Game {
	return Game{
		name:        name,
		description: description,
		category:    category,
		rtp:         rtp,
		minBet:      minBet,
	}
}

// WithProvider returns a copy of g made by provider.
func (g Game) WithProvider(provider string) Game {
	g.provider = provider
	return g
}

func (g Game) Name() string {
	return g.name
}

func (g Game) Description() string {
	return g.description
}

func (g Game) Category() string {
	return g.category
}

// Provider returns the studio that made the game, or "" if unknown.
func (g Game) Provider() string {
	return g.provider
}

// RTP returns the return-to-player percentage, e.g. 96.21.
func (g Game) RTP() decimal.Decimal {
	return g.rtp
}

func (g Game) MinBet() decimal.Decimal {
	return g.minBet
}

// String formats the game on one line, like:
//
//	Book of Dead - RTP: 96.21% | Min Bet: $0.10 -- Egyptian slot
func (g Game) String() string {
	var sb strings.Builder

	sb.WriteString(g.name)
	if strings.EqualFold(g.category, "Promotional") {
		sb.WriteString(" (promo)")
	}
	fmt.Fprintf(&sb, " - RTP: %s%% | Min Bet: $%s", g.rtp.StringFixed(2), g.minBet.StringFixed(2))
	if g.provider != "" {
		fmt.Fprintf(&sb, " | %s", g.provider)
	}
	if g.description != "" {
		sb.WriteString(" -- ")
		sb.WriteString(g.description)
	}

	return sb.String()
}
