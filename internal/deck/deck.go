// Package deck implements the 52-card deck: ordered construction, seeded
// shuffling, dealing, and snapshot-based reset.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/lox/pokerengine/internal/card"
)

// Deck is a mutable sequence of cards dealt from the top. The original
// 52-card order is preserved internally so Reset can restore it exactly,
// matching the snapshot semantics of the original PokerEngine deck rather
// than reshuffling on reset.
type Deck struct {
	original []card.Card
	cards    []card.Card
	rng      *rand.Rand
}

// New builds a standard 52-card deck in suit-major, rank-ascending order.
// The caller supplies the RNG so shuffling stays deterministic under a
// fixed seed; Deck never seeds its own randomness from wall-clock time.
func New(rng *rand.Rand) *Deck {
	cards := make([]card.Card, 0, 52)
	for suit := card.Clubs; suit <= card.Spades; suit++ {
		for rank := card.Two; rank <= card.Ace; rank++ {
			cards = append(cards, card.New(rank, suit))
		}
	}
	original := make([]card.Card, len(cards))
	copy(original, cards)
	return &Deck{original: original, cards: cards, rng: rng}
}

// Shuffle randomizes the remaining cards in place using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card. It returns an error if the deck
// is empty rather than a silent zero value.
func (d *Deck) Deal() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, fmt.Errorf("deck: deal from empty deck")
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DealN removes and returns the top n cards. It errors without mutating
// the deck if fewer than n cards remain.
func (d *Deck) DealN(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("deck: negative deal count %d", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("deck: cannot deal %d cards, %d remain", n, len(d.cards))
	}
	dealt := make([]card.Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}

// Remove strips the given cards from the remaining deck, used to exclude
// known hero/board/villain cards before sampling. It is a no-op for any
// card not currently present.
func (d *Deck) Remove(cards ...card.Card) {
	if len(cards) == 0 {
		return
	}
	excluded := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		excluded[c] = true
	}
	remaining := d.cards[:0]
	for _, c := range d.cards {
		if !excluded[c] {
			remaining = append(remaining, c)
		}
	}
	d.cards = remaining
}

// CardsRemaining returns the number of cards left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a read-only snapshot of the cards remaining, in deal order.
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Clone returns an independent copy of the deck sharing the caller's RNG.
// Mutating the clone (Deal, Remove, Shuffle) never affects the original.
func (d *Deck) Clone() *Deck {
	original := make([]card.Card, len(d.original))
	copy(original, d.original)
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return &Deck{original: original, cards: cards, rng: d.rng}
}

// Reset restores the deck to its original 52-card order, undoing any
// shuffle, deal, or removal. It does not reshuffle; call Shuffle again if
// a fresh randomized order is wanted.
func (d *Deck) Reset() {
	d.cards = make([]card.Card, len(d.original))
	copy(d.cards, d.original)
}