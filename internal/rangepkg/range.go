// Package rangepkg implements a weighted range of starting hand combos
// and weighted rejection sampling over them.
package rangepkg

import (
	"math/rand"

	"github.com/lox/pokerengine/internal/card"
)

// Combo is a specific two-card starting hand with a sampling weight. The
// two cards are stored in a canonical order so two Combos built from the
// same pair of cards in either order compare equal.
type Combo struct {
	C1, C2 card.Card
	Weight float64
}

// NewCombo builds a Combo, canonicalizing card order.
func NewCombo(a, b card.Card, weight float64) Combo {
	if less(b, a) {
		a, b = b, a
	}
	return Combo{C1: a, C2: b, Weight: weight}
}

func less(a, b card.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}

// Cards returns the combo's two cards.
func (c Combo) Cards() []card.Card {
	return []card.Card{c.C1, c.C2}
}

// Range is a weighted collection of distinct Combos, sampled via weighted
// rejection sampling.
type Range struct {
	combos []Combo
	index  map[[2]card.Card]int
}

// New constructs an empty Range.
func New() *Range {
	return &Range{index: make(map[[2]card.Card]int)}
}

// AddCombo adds (c1, c2) with the given weight, ignoring duplicates (the
// first weight for a given pair wins).
func (r *Range) AddCombo(c1, c2 card.Card, weight float64) {
	combo := NewCombo(c1, c2, weight)
	key := [2]card.Card{combo.C1, combo.C2}
	if _, exists := r.index[key]; exists {
		return
	}
	r.index[key] = len(r.combos)
	r.combos = append(r.combos, combo)
}

// RemoveBlocked strips every combo that uses any of the given known
// cards, e.g. the hero's hole cards or the board.
func (r *Range) RemoveBlocked(known []card.Card) {
	blocked := make(map[card.Card]bool, len(known))
	for _, c := range known {
		blocked[c] = true
	}
	kept := r.combos[:0]
	newIndex := make(map[[2]card.Card]int)
	for _, c := range r.combos {
		if blocked[c.C1] || blocked[c.C2] {
			continue
		}
		newIndex[[2]card.Card{c.C1, c.C2}] = len(kept)
		kept = append(kept, c)
	}
	r.combos = kept
	r.index = newIndex
}

// Clone returns an independent copy of the range; mutating the clone (e.g.
// via RemoveBlocked) never affects the original.
func (r *Range) Clone() *Range {
	clone := &Range{
		combos: make([]Combo, len(r.combos)),
		index:  make(map[[2]card.Card]int, len(r.index)),
	}
	copy(clone.combos, r.combos)
	for k, v := range r.index {
		clone.index[k] = v
	}
	return clone
}

// Combos returns the range's combos in insertion order.
func (r *Range) Combos() []Combo {
	out := make([]Combo, len(r.combos))
	copy(out, r.combos)
	return out
}

// Size returns the number of combos in the range.
func (r *Range) Size() int {
	return len(r.combos)
}

// Contains reports whether the range contains the combo formed by a, b
// (in either order).
func (r *Range) Contains(a, b card.Card) bool {
	if less(b, a) {
		a, b = b, a
	}
	_, ok := r.index[[2]card.Card{a, b}]
	return ok
}

// Sample draws a combo via weighted rejection sampling: it returns false
// if the range is empty. If every combo has been exhausted by rounding
// error, it falls back to the last combo rather than failing the
// simulation outright, matching the sample-with-fallback behavior of the
// original range sampler.
func (r *Range) Sample(rng *rand.Rand) (Combo, bool) {
	if len(r.combos) == 0 {
		return Combo{}, false
	}

	var totalWeight float64
	for _, c := range r.combos {
		totalWeight += c.Weight
	}

	pick := rng.Float64() * totalWeight
	for _, c := range r.combos {
		pick -= c.Weight
		if pick <= 0.0 {
			return c, true
		}
	}
	return r.combos[len(r.combos)-1], true
}
