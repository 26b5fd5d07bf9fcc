package evaluator

import (
	"fmt"

	"github.com/lox/pokerengine/internal/card"
)

// ParseCards splits a concatenated two-character-per-card notation (e.g.
// "AsKsQsJsTs") into a slice of Cards. s must have even length; an
// odd-length string (a truncated or malformed card) is rejected rather
// than silently dropping its trailing character.
func ParseCards(s string) ([]card.Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("evaluator: invalid card string length %d (must be even): %q", len(s), s)
	}
	var cards []card.Card
	for i := 0; i+2 <= len(s); i += 2 {
		c, err := card.Parse(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses a concatenated card notation and panics on
// failure. Intended for tests and literal hand lists.
func MustParseCards(s string) []card.Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
