// Package combinatorics enumerates k-element subsets of a slice of cards
// in lexicographic index order. internal/gametree's chance-node expansion
// uses it to enumerate every combination of community cards a chance node
// can deal.
package combinatorics

import "github.com/lox/pokerengine/internal/card"

// Combinations returns every k-element subset of cards, generated in
// lexicographic order of their indices into cards. It returns nil if k is
// negative or greater than len(cards).
func Combinations(cards []card.Card, k int) [][]card.Card {
	n := len(cards)
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]card.Card{{}}
	}

	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	var results [][]card.Card
	for {
		combo := make([]card.Card, k)
		for i, idx := range indices {
			combo[i] = cards[idx]
		}
		results = append(results, combo)

		i := k - 1
		for i >= 0 && indices[i] == i+n-k {
			i--
		}
		if i < 0 {
			break
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
	return results
}
