// Package equity implements the Monte-Carlo equity simulator: given a
// hero range, a partial board, and one range per opponent, it estimates
// the hero's win/tie/loss rates by repeatedly sampling a hero hand and
// opponent hands, completing the board, and evaluating showdowns.
package equity

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerengine/internal/board"
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/evaluator"
	"github.com/lox/pokerengine/internal/rangepkg"
)

// Config describes one equity query. HeroRange and each of OpponentRanges
// are sampled fresh every iteration; callers that want a fixed hero hand
// build a single-combo range for it (weight is irrelevant with one combo).
type Config struct {
	HeroRange      *rangepkg.Range
	Board          *board.Board
	OpponentRanges []*rangepkg.Range
	Iterations     int
	Seed           int64
	// Workers bounds how many goroutines run iterations concurrently. A
	// value <= 0 runs a single worker goroutine.
	Workers int
}

// Result is the tally of a completed simulation.
type Result struct {
	Wins, Ties, Losses int
	Total              int
}

// WinRate, TieRate, LossRate return the respective fraction of Total.
func (r Result) WinRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Total)
}

func (r Result) TieRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Ties) / float64(r.Total)
}

func (r Result) LossRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Losses) / float64(r.Total)
}

// Equity returns overall equity: wins count fully, ties count as half.
func (r Result) Equity() float64 {
	if r.Total == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(r.Total)
}

// Run executes the configured number of Monte-Carlo iterations and
// returns the aggregate result. Iterations are partitioned into
// contiguous blocks, one per worker, each driven by its own *rand.Rand
// seeded deterministically from cfg.Seed and the worker's index, so a
// given (Seed, Workers) pair always produces the same result regardless
// of scheduling.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Iterations <= 0 {
		return Result{}, fmt.Errorf("equity: iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.HeroRange == nil || cfg.HeroRange.Size() == 0 {
		return Result{}, fmt.Errorf("equity: hero range must contain at least one combo")
	}
	if len(cfg.OpponentRanges) == 0 {
		return Result{}, fmt.Errorf("equity: at least one opponent range is required")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > cfg.Iterations {
		workers = cfg.Iterations
	}

	batches := partition(cfg.Iterations, workers)
	partials := make([]Result, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	for i, n := range batches {
		i, n := i, n
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			r, err := runBatch(cfg, rng, n)
			if err != nil {
				return err
			}
			partials[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, p := range partials {
		total.Wins += p.Wins
		total.Ties += p.Ties
		total.Losses += p.Losses
		total.Total += p.Total
	}
	return total, nil
}

// partition splits n iterations into up to workers contiguous batch
// sizes, as evenly as possible.
func partition(n, workers int) []int {
	base := n / workers
	remainder := n % workers
	batches := make([]int, workers)
	for i := range batches {
		batches[i] = base
		if i < remainder {
			batches[i]++
		}
	}
	return batches
}

func runBatch(cfg Config, rng *rand.Rand, iterations int) (Result, error) {
	var result Result
	boardCards := cfg.Board.Cards()

	for iter := 0; iter < iterations; iter++ {
		simDeck := deck.New(rng)
		simDeck.Shuffle()
		simDeck.Remove(boardCards...)

		heroCombo, ok := cfg.HeroRange.Sample(rng)
		if !ok {
			return Result{}, fmt.Errorf("equity: no available combo for hero")
		}
		heroCards := heroCombo.Cards()
		simDeck.Remove(heroCards...)

		blocked := append([]card.Card{}, heroCards...)
		oppHands := make([][]card.Card, len(cfg.OpponentRanges))
		for i, r := range cfg.OpponentRanges {
			candidates := r.Clone()
			candidates.RemoveBlocked(blocked)
			combo, ok := candidates.Sample(rng)
			if !ok {
				return Result{}, fmt.Errorf("equity: no available combo for opponent %d", i)
			}
			oppCards := combo.Cards()
			oppHands[i] = oppCards
			simDeck.Remove(oppCards...)
			blocked = append(blocked, oppCards...)
		}

		needed := board.MaxCards - len(boardCards)
		drawn, err := simDeck.DealN(needed)
		if err != nil {
			return Result{}, fmt.Errorf("equity: board completion: %w", err)
		}
		simBoard := append(append([]card.Card{}, boardCards...), drawn...)

		heroFinal := append(append([]card.Card{}, heroCards...), simBoard...)
		heroRank, err := evaluator.Evaluate(heroFinal)
		if err != nil {
			return Result{}, fmt.Errorf("equity: evaluating hero hand: %w", err)
		}

		bestScore := heroRank.Score
		tiedWithBest := 0
		beatenByOpponent := false
		for _, oh := range oppHands {
			final := append(append([]card.Card{}, oh...), simBoard...)
			oppRank, err := evaluator.Evaluate(final)
			if err != nil {
				return Result{}, fmt.Errorf("equity: evaluating opponent hand: %w", err)
			}
			switch {
			case oppRank.Score > bestScore:
				bestScore = oppRank.Score
				tiedWithBest = 0
				beatenByOpponent = true
			case oppRank.Score == bestScore:
				tiedWithBest++
			}
		}

		switch {
		case !beatenByOpponent && tiedWithBest == 0:
			result.Wins++
		case !beatenByOpponent && tiedWithBest > 0:
			result.Ties++
		default:
			result.Losses++
		}
		result.Total++
	}
	return result, nil
}
