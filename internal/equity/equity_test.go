package equity

import (
	"context"
	"testing"

	"github.com/lox/pokerengine/internal/board"
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/rangepkg"
)

func pairRange(a, b card.Card) *rangepkg.Range {
	r := rangepkg.New()
	r.AddCombo(a, b, 1.0)
	return r
}

func TestRunPocketAcesVsRandomIsHeavyFavorite(t *testing.T) {
	hero := pairRange(card.MustParse("Ah"), card.MustParse("Ac"))
	b, err := board.New()
	if err != nil {
		t.Fatal(err)
	}

	opp := rangepkg.New()
	// A wide random range excluding hero's aces.
	for _, s1 := range []card.Suit{card.Clubs, card.Diamonds, card.Hearts, card.Spades} {
		for r1 := card.Two; r1 <= card.Ace; r1++ {
			for _, s2 := range []card.Suit{card.Clubs, card.Diamonds, card.Hearts, card.Spades} {
				for r2 := card.Two; r2 <= card.Ace; r2++ {
					c1, c2 := card.New(r1, s1), card.New(r2, s2)
					if c1 == c2 {
						continue
					}
					if c1 == card.MustParse("Ah") || c1 == card.MustParse("Ac") ||
						c2 == card.MustParse("Ah") || c2 == card.MustParse("Ac") {
						continue
					}
					opp.AddCombo(c1, c2, 1.0)
				}
			}
		}
	}

	result, err := Run(context.Background(), Config{
		HeroRange:      hero,
		Board:          b,
		OpponentRanges: []*rangepkg.Range{opp},
		Iterations:     2000,
		Seed:           42,
		Workers:        4,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 2000 {
		t.Fatalf("Total = %d, want 2000", result.Total)
	}
	if result.Equity() < 0.7 {
		t.Errorf("pocket aces equity = %v, expected a heavy favorite (>0.7)", result.Equity())
	}
}

func TestRunDeterministicForSameSeedAndWorkers(t *testing.T) {
	hero := pairRange(card.MustParse("Kh"), card.MustParse("Kd"))
	b, err := board.New(card.MustParse("2c"), card.MustParse("7d"), card.MustParse("9s"))
	if err != nil {
		t.Fatal(err)
	}
	opp := pairRange(card.MustParse("Qh"), card.MustParse("Qc"))

	cfg := Config{
		HeroRange:      hero,
		Board:          b,
		OpponentRanges: []*rangepkg.Range{opp},
		Iterations:     500,
		Seed:           7,
		Workers:        3,
	}

	r1, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r1 != r2 {
		t.Errorf("Run not deterministic: %+v != %+v", r1, r2)
	}
}

func TestRunRejectsZeroIterations(t *testing.T) {
	hero := pairRange(card.MustParse("Ah"), card.MustParse("Ac"))
	b, _ := board.New()
	opp := pairRange(card.MustParse("Kh"), card.MustParse("Kc"))
	_, err := Run(context.Background(), Config{
		HeroRange:      hero,
		Board:          b,
		OpponentRanges: []*rangepkg.Range{opp},
		Iterations:     0,
		Seed:           1,
	})
	if err == nil {
		t.Error("expected error for zero iterations")
	}
}

func TestRunRejectsNoOpponents(t *testing.T) {
	hero := pairRange(card.MustParse("Ah"), card.MustParse("Ac"))
	b, _ := board.New()
	_, err := Run(context.Background(), Config{
		HeroRange:  hero,
		Board:      b,
		Iterations: 100,
		Seed:       1,
	})
	if err == nil {
		t.Error("expected error for no opponent ranges")
	}
}

func TestRunRejectsEmptyHeroRange(t *testing.T) {
	b, _ := board.New()
	opp := pairRange(card.MustParse("Kh"), card.MustParse("Kc"))
	_, err := Run(context.Background(), Config{
		HeroRange:      rangepkg.New(),
		Board:          b,
		OpponentRanges: []*rangepkg.Range{opp},
		Iterations:     100,
		Seed:           1,
	})
	if err == nil {
		t.Error("expected error for an empty hero range")
	}
}
