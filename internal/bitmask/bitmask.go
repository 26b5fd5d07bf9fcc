// Package bitmask implements the 52-bit card-mask representation used by
// the evaluator: one bit per card, bit index
// suit*13 + (rank-2), packed into a uint64 hand mask.
package bitmask

import (
	"math/bits"

	"github.com/lox/pokerengine/internal/card"
)

// suitMask isolates the 13 rank bits belonging to a single suit.
const suitMask uint64 = 0x1FFF

// straightWindow is 5 consecutive set bits, used to scan for straights.
const straightWindow uint16 = 0b11111

// wheelMask is the ace-low straight (A-2-3-4-5) rank pattern: bits for
// rank Five(3) down through Two(0) plus the Ace(12) bit.
const wheelMask uint16 = 0b1000000001111

// Mask is a bitmask over up to 52 cards.
type Mask uint64

// Of ORs together the bit for each card into a single Mask.
func Of(cards ...card.Card) Mask {
	var m Mask
	for _, c := range cards {
		m |= bitFor(c)
	}
	return m
}

func bitFor(c card.Card) Mask {
	return Mask(1) << uint(c.Index())
}

// Add returns a new mask with c set.
func (m Mask) Add(c card.Card) Mask {
	return m | bitFor(c)
}

// Has reports whether c is present in the mask.
func (m Mask) Has(c card.Card) bool {
	return m&bitFor(c) != 0
}

// Count returns the number of cards set in the mask.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// SuitMask returns the 13-bit rank mask for a single suit, bit i set
// means rank (i+2) of that suit is present.
func (m Mask) SuitMask(suit card.Suit) uint16 {
	return uint16((uint64(m) >> (uint(suit) * 13)) & suitMask)
}

// RankMask ORs all four suit masks together into a single 13-bit rank
// presence mask, losing suit information.
func (m Mask) RankMask() uint16 {
	var r uint16
	for suit := card.Clubs; suit <= card.Spades; suit++ {
		r |= m.SuitMask(suit)
	}
	return r
}

// RankCounts returns, for each of the 13 ranks (index 0 = Two .. index 12
// = Ace), how many suits of that rank are present in the mask.
func (m Mask) RankCounts() [13]int {
	var counts [13]int
	for suit := card.Clubs; suit <= card.Spades; suit++ {
		sm := m.SuitMask(suit)
		for rank := 0; rank < 13; rank++ {
			if sm&(1<<uint(rank)) != 0 {
				counts[rank]++
			}
		}
	}
	return counts
}

// Cards expands the mask back into a slice of Cards, in suit-major,
// rank-ascending order.
func (m Mask) Cards() []card.Card {
	var out []card.Card
	for suit := card.Clubs; suit <= card.Spades; suit++ {
		sm := m.SuitMask(suit)
		for rank := 0; rank < 13; rank++ {
			if sm&(1<<uint(rank)) != 0 {
				out = append(out, card.New(card.Rank(rank+2), suit))
			}
		}
	}
	return out
}

// StraightHighCard scans a 13-bit rank mask for five consecutive ranks,
// including the ace-low wheel (A-2-3-4-5). It returns the rank of the
// straight's high card and true if one is found, scanning from the
// highest possible straight (Ace-high) down so the strongest straight
// wins when more than 5 ranks are present.
func StraightHighCard(rankMask uint16) (card.Rank, bool) {
	for start := 8; start >= 0; start-- {
		if (rankMask>>uint(start))&straightWindow == straightWindow {
			return card.Rank(start + 4 + 2), true
		}
	}
	if rankMask&wheelMask == wheelMask {
		return card.Five, true
	}
	return 0, false
}
