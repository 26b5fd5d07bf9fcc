package combinatorics

import (
	"testing"

	"github.com/lox/pokerengine/internal/card"
)

func fiveCards() []card.Card {
	return []card.Card{
		card.MustParse("Ah"), card.MustParse("Kd"), card.MustParse("Qc"),
		card.MustParse("Js"), card.MustParse("Th"),
	}
}

func TestCombinationsCount(t *testing.T) {
	cards := fiveCards()
	combos := Combinations(cards, 3)
	// C(5,3) = 10
	if len(combos) != 10 {
		t.Fatalf("got %d combos, want 10", len(combos))
	}
	for _, c := range combos {
		if len(c) != 3 {
			t.Fatalf("combo has %d cards, want 3", len(c))
		}
	}
}

func TestCombinationsOfSevenChooseFive(t *testing.T) {
	cards := []card.Card{
		card.MustParse("Ah"), card.MustParse("Kd"), card.MustParse("Qc"),
		card.MustParse("Js"), card.MustParse("Th"), card.MustParse("9c"),
		card.MustParse("2d"),
	}
	combos := Combinations(cards, 5)
	if len(combos) != 21 { // C(7,5) = 21
		t.Fatalf("got %d combos, want 21", len(combos))
	}
}

func TestCombinationsNoDuplicates(t *testing.T) {
	cards := fiveCards()
	combos := Combinations(cards, 2)
	seen := make(map[string]bool)
	for _, c := range combos {
		key := c[0].String() + c[1].String()
		if seen[key] {
			t.Fatalf("duplicate combo %s", key)
		}
		seen[key] = true
	}
}

func TestCombinationsInvalidK(t *testing.T) {
	cards := fiveCards()
	if got := Combinations(cards, -1); got != nil {
		t.Errorf("Combinations with k=-1 should be nil, got %v", got)
	}
	if got := Combinations(cards, 6); got != nil {
		t.Errorf("Combinations with k>n should be nil, got %v", got)
	}
}

func TestCombinationsKZero(t *testing.T) {
	combos := Combinations(fiveCards(), 0)
	if len(combos) != 1 || len(combos[0]) != 0 {
		t.Fatalf("Combinations with k=0 should yield one empty combo, got %v", combos)
	}
}
