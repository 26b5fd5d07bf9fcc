// Package rangenotation parses standard poker range notation ("AA,KK",
// "AKs,AKo", "TT+", "A5s-A2s", "22-66") into an internal/rangepkg.Range.
package rangenotation

import (
	"fmt"
	"strings"

	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/rangepkg"
)

// Parse builds a Range from comma-separated range notation. It errors if
// the notation holds no range parts.
func Parse(notation string) (*rangepkg.Range, error) {
	r := rangepkg.New()
	parts := 0
	for _, part := range strings.Split(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := addRangePart(r, part); err != nil {
			return nil, fmt.Errorf("rangenotation: invalid range part %q: %w", part, err)
		}
		parts++
	}
	if parts == 0 {
		return nil, fmt.Errorf("rangenotation: no range parts in %q", notation)
	}
	return r, nil
}

func addRangePart(r *rangepkg.Range, part string) error {
	switch {
	case strings.Contains(part, "+"):
		return addPlusRange(r, part)
	case strings.Contains(part, "-"):
		return addDashRange(r, part)
	default:
		return addSingleHand(r, part)
	}
}

func addSingleHand(r *rangepkg.Range, notation string) error {
	if len(notation) < 2 || len(notation) > 3 {
		return fmt.Errorf("invalid notation length: %s", notation)
	}
	rank1, err1 := parseRank(notation[0])
	rank2, err2 := parseRank(notation[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("invalid rank in: %s", notation)
	}

	if rank1 == rank2 {
		if len(notation) == 3 {
			return fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		addPocketPair(r, rank1)
		return nil
	}

	if len(notation) == 2 {
		addSuitedCombos(r, rank1, rank2)
		addOffsuitCombos(r, rank1, rank2)
		return nil
	}

	switch notation[2] {
	case 's':
		addSuitedCombos(r, rank1, rank2)
	case 'o':
		addOffsuitCombos(r, rank1, rank2)
	default:
		return fmt.Errorf("invalid modifier: %c", notation[2])
	}
	return nil
}

// addPlusRange handles notations like "TT+" (all pairs TT and higher) and
// "ATs+"/"KJo+" (the kicker steps up from the given rank to one below the
// high card: ATs+ is ATs, AJs, AQs, AKs). A kicker one below the high card
// expands to itself alone, so AKs+ is just AKs.
func addPlusRange(r *rangepkg.Range, notation string) error {
	plusIdx := strings.Index(notation, "+")
	if plusIdx == -1 {
		return fmt.Errorf("no + found")
	}
	base := notation[:plusIdx]
	if len(base) < 2 || len(base) > 3 {
		return fmt.Errorf("invalid base notation: %s", base)
	}
	rank1, err1 := parseRank(base[0])
	rank2, err2 := parseRank(base[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("invalid rank")
	}

	if rank1 == rank2 {
		for rank := rank1; rank <= card.Ace; rank++ {
			addPocketPair(r, rank)
		}
		return nil
	}

	suited, offsuit := false, false
	switch {
	case len(base) == 2:
		suited, offsuit = true, true
	case base[2] == 's':
		suited = true
	case base[2] == 'o':
		offsuit = true
	default:
		return fmt.Errorf("invalid modifier")
	}

	for rank := rank2; rank < rank1; rank++ {
		if suited {
			addSuitedCombos(r, rank1, rank)
		}
		if offsuit {
			addOffsuitCombos(r, rank1, rank)
		}
	}
	return nil
}

// addDashRange handles notations like "22-66" (pocket pair range) and
// "A5s-A2s" (same high card, kicker range). Not documented by every
// range-notation reference but accepted here since it's load-bearing
// functionality for building wide ranges compactly.
func addDashRange(r *rangepkg.Range, notation string) error {
	parts := strings.Split(notation, "-")
	if len(parts) != 2 {
		return fmt.Errorf("invalid dash range format")
	}
	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if len(start) < 2 || len(end) < 2 {
		return fmt.Errorf("invalid notation in range")
	}

	startRank1, err1 := parseRank(start[0])
	startRank2, err2 := parseRank(start[1])
	endRank1, err3 := parseRank(end[0])
	endRank2, err4 := parseRank(end[1])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return fmt.Errorf("invalid ranks in range")
	}

	if startRank1 == startRank2 && endRank1 == endRank2 {
		lower, upper := minRank(startRank1, endRank1), maxRank(startRank1, endRank1)
		for rank := lower; rank <= upper; rank++ {
			addPocketPair(r, rank)
		}
		return nil
	}

	if startRank1 == endRank1 {
		suited := len(start) == 3 && start[2] == 's'
		offsuit := len(start) == 3 && start[2] == 'o'
		if len(start) == 2 {
			suited, offsuit = true, true
		}

		lower, upper := minRank(startRank2, endRank2), maxRank(startRank2, endRank2)
		for rank := lower; rank <= upper; rank++ {
			if suited {
				addSuitedCombos(r, startRank1, rank)
			}
			if offsuit {
				addOffsuitCombos(r, startRank1, rank)
			}
		}
		return nil
	}

	return fmt.Errorf("unsupported range format: %s", notation)
}

func addPocketPair(r *rangepkg.Range, rank card.Rank) {
	for s1 := card.Clubs; s1 <= card.Spades; s1++ {
		for s2 := s1 + 1; s2 <= card.Spades; s2++ {
			r.AddCombo(card.New(rank, s1), card.New(rank, s2), 1.0)
		}
	}
}

func addSuitedCombos(r *rangepkg.Range, rank1, rank2 card.Rank) {
	for s := card.Clubs; s <= card.Spades; s++ {
		r.AddCombo(card.New(rank1, s), card.New(rank2, s), 1.0)
	}
}

func addOffsuitCombos(r *rangepkg.Range, rank1, rank2 card.Rank) {
	for s1 := card.Clubs; s1 <= card.Spades; s1++ {
		for s2 := card.Clubs; s2 <= card.Spades; s2++ {
			if s1 != s2 {
				r.AddCombo(card.New(rank1, s1), card.New(rank2, s2), 1.0)
			}
		}
	}
}

func parseRank(b byte) (card.Rank, error) {
	switch b {
	case '2':
		return card.Two, nil
	case '3':
		return card.Three, nil
	case '4':
		return card.Four, nil
	case '5':
		return card.Five, nil
	case '6':
		return card.Six, nil
	case '7':
		return card.Seven, nil
	case '8':
		return card.Eight, nil
	case '9':
		return card.Nine, nil
	case 'T', 't':
		return card.Ten, nil
	case 'J', 'j':
		return card.Jack, nil
	case 'Q', 'q':
		return card.Queen, nil
	case 'K', 'k':
		return card.King, nil
	case 'A', 'a':
		return card.Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", b)
	}
}

func minRank(a, b card.Rank) card.Rank {
	if a < b {
		return a
	}
	return b
}

func maxRank(a, b card.Rank) card.Rank {
	if a > b {
		return a
	}
	return b
}
