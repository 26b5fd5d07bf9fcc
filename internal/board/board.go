// Package board implements the community-card board: an append-only
// sequence of 0 to 5 cards.
package board

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
)

// MaxCards is the maximum number of community cards (flop+turn+river).
const MaxCards = 5

// Board is the append-only sequence of community cards dealt so far.
type Board struct {
	cards []card.Card
}

// New constructs a Board from zero or more initial cards.
func New(cards ...card.Card) (*Board, error) {
	b := &Board{}
	if err := b.Add(cards...); err != nil {
		return nil, err
	}
	return b, nil
}

// Add appends cards to the board. It errors without mutating the board if
// the addition would exceed MaxCards.
func (b *Board) Add(cards ...card.Card) error {
	if len(b.cards)+len(cards) > MaxCards {
		return fmt.Errorf("board: cannot hold more than %d cards", MaxCards)
	}
	b.cards = append(b.cards, cards...)
	return nil
}

// Clone returns an independent copy of the board; mutating the clone never
// affects the original.
func (b *Board) Clone() *Board {
	out := &Board{cards: make([]card.Card, len(b.cards))}
	copy(out.cards, b.cards)
	return out
}

// Cards returns a read-only snapshot of the board's cards in deal order.
func (b *Board) Cards() []card.Card {
	out := make([]card.Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Size returns the number of cards currently on the board.
func (b *Board) Size() int {
	return len(b.cards)
}

// Street returns the name of the current street based on board size:
// "preflop" (0), "flop" (3), "turn" (4), "river" (5). Boards of size 1 or
// 2 are not valid streets but are reported as "incomplete" rather than
// erroring, since partial construction is legal mid-build.
func (b *Board) Street() string {
	switch len(b.cards) {
	case 0:
		return "preflop"
	case 3:
		return "flop"
	case 4:
		return "turn"
	case 5:
		return "river"
	default:
		return "incomplete"
	}
}

// IsComplete reports whether the board has all 5 community cards.
func (b *Board) IsComplete() bool {
	return len(b.cards) == MaxCards
}

// CardsNeeded returns how many more cards are required to reach a
// complete 5-card board.
func (b *Board) CardsNeeded() int {
	return MaxCards - len(b.cards)
}
