// Package handset implements the hole-card Hand, the chip Stack, and the
// contribution-based Pot used to track and resolve a betting round.
package handset

import (
	"fmt"
	"sort"

	"github.com/lox/pokerengine/internal/card"
)

// Hand is a player's unordered pair of hole cards. Equality and ordering
// are defined on sorted copies so {Ah, Kd} == {Kd, Ah}.
type Hand struct {
	cards [2]card.Card
}

// New constructs a Hand from two distinct cards.
func New(a, b card.Card) (Hand, error) {
	if a == b {
		return Hand{}, fmt.Errorf("handset: duplicate card %v in hand", a)
	}
	return Hand{cards: [2]card.Card{a, b}}, nil
}

// Cards returns the two hole cards in their original construction order.
func (h Hand) Cards() []card.Card {
	return []card.Card{h.cards[0], h.cards[1]}
}

// sorted returns the two cards ordered for order-independent comparison.
func (h Hand) sorted() [2]card.Card {
	a, b := h.cards[0], h.cards[1]
	if less(b, a) {
		a, b = b, a
	}
	return [2]card.Card{a, b}
}

func less(a, b card.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}

// Equals reports whether two hands contain the same two cards,
// regardless of order.
func (h Hand) Equals(o Hand) bool {
	return h.sorted() == o.sorted()
}

// Less provides a total order over hands for deterministic sorting
// (e.g. rendering a range's hands), comparing sorted card pairs
// lexicographically.
func (h Hand) Less(o Hand) bool {
	hs, os := h.sorted(), o.sorted()
	if hs[0] != os[0] {
		return less(hs[0], os[0])
	}
	return less(hs[1], os[1])
}

// String renders the hand as its two cards, e.g. "AhKd".
func (h Hand) String() string {
	return h.cards[0].String() + h.cards[1].String()
}

// SortHands sorts a slice of Hands in place using Less.
func SortHands(hands []Hand) {
	sort.Slice(hands, func(i, j int) bool { return hands[i].Less(hands[j]) })
}
