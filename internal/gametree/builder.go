package gametree

import (
	"fmt"
	"math"

	"github.com/lox/pokerengine/internal/combinatorics"
)

// GameTreeBuilderConfig parameterizes tree expansion: the pot-fraction bet
// sizes exposed at decision nodes, and the depth at which expansion stops
// and emits a Terminal node regardless of the underlying state.
type GameTreeBuilderConfig struct {
	BetFractions []float64
	MaxDepth     int
}

// GameTreeBuilder expands a root DecisionState into a full game tree.
type GameTreeBuilder struct {
	cfg GameTreeBuilderConfig
}

// NewGameTreeBuilder validates cfg and returns a builder. BetFractions
// must all be positive and MaxDepth must be at least 1.
func NewGameTreeBuilder(cfg GameTreeBuilderConfig) (*GameTreeBuilder, error) {
	if cfg.MaxDepth < 1 {
		return nil, fmt.Errorf("gametree: max depth must be at least 1, got %d", cfg.MaxDepth)
	}
	for i, f := range cfg.BetFractions {
		if f <= 0 {
			return nil, fmt.Errorf("gametree: bet fraction[%d] must be positive, got %v", i, f)
		}
	}
	return &GameTreeBuilder{cfg: cfg}, nil
}

// BuildTree expands root into a complete tree bounded by the builder's
// MaxDepth.
func (b *GameTreeBuilder) BuildTree(root DecisionState) (*GameTreeNode, error) {
	return b.expandNode(root, 0)
}

// expandNode is the single dispatch point: terminal/depth-capped states
// emit a leaf, chance states enumerate card deals, everything else
// enumerates legal player actions.
func (b *GameTreeBuilder) expandNode(s DecisionState, depth int) (*GameTreeNode, error) {
	if s.Terminal || depth >= b.cfg.MaxDepth {
		return &GameTreeNode{State: s, Kind: Terminal}, nil
	}
	if s.IsChanceNode() {
		return b.expandChance(s, depth)
	}
	return b.expandDecision(s, depth)
}

// expandChance enumerates every combination of the street's required
// undealt cards, in the lexicographic order combinatorics.Combinations
// produces, and builds one Deal-labeled child per combination.
func (b *GameTreeBuilder) expandChance(s DecisionState, depth int) (*GameTreeNode, error) {
	needed := s.Street.cardsToDeal()
	undealt := s.Deck.Cards()

	node := &GameTreeNode{State: s, Kind: Chance}
	for _, dealt := range combinatorics.Combinations(undealt, needed) {
		child := s.Clone()
		child.Deck.Remove(dealt...)
		if err := child.Board.Add(dealt...); err != nil {
			return nil, fmt.Errorf("gametree: dealing %v: %w", dealt, err)
		}
		child.Street = s.Street.next()

		for i := range child.Players {
			p := &child.Players[i]
			if p.CurrentBet != 0 {
				child.Pot.AddContribution(p.ID, p.CurrentBet)
				p.CurrentBet = 0
			}
			if !p.Folded {
				p.StillToAct = true
			}
		}
		child.LastAggressorIndex = NoAggressor
		child.CurrentPlayerIndex = child.FirstToActIndex

		childNode, err := b.expandNode(child, depth+1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, ActionEdge{
			Action: Action{Type: Deal, Cards: dealt},
			Child:  childNode,
		})
	}
	return node, nil
}

// expandDecision enumerates the acting player's legal actions and builds
// one child per action, in the order legalActions produces.
func (b *GameTreeBuilder) expandDecision(s DecisionState, depth int) (*GameTreeNode, error) {
	actions := b.legalActions(s)
	if len(actions) == 0 {
		s.Terminal = true
		return &GameTreeNode{State: s, Kind: Terminal}, nil
	}

	node := &GameTreeNode{State: s, Kind: Decision}
	for _, a := range actions {
		child := s.Clone()
		applyAction(&child, a)

		childNode, err := b.expandNode(child, depth+1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, ActionEdge{Action: a, Child: childNode})
	}
	return node, nil
}

// legalActions lists the acting player's available actions. A player
// facing a bet (currentBet < maxBet) can fold (if more than one player is
// still in), call, or raise by one of the configured pot fractions; a
// player with no bet to face can check or bet by one of those fractions.
// Sizes that exceed the player's stack are replaced by a single all-in
// action and further fractions are not enumerated, so no size repeats.
func (b *GameTreeBuilder) legalActions(s DecisionState) []Action {
	current := s.Players[s.CurrentPlayerIndex]
	if current.Folded {
		return nil
	}

	maxBet := s.maxBet()
	potTotal := s.Pot.Total()
	stack := current.Stack.Chips()

	var actions []Action

	if current.CurrentBet < maxBet {
		if s.activeCount() > 1 {
			actions = append(actions, Action{Type: Fold})
		}
		actions = append(actions, Action{Type: Call})

		if stack > 0 {
			for _, f := range b.cfg.BetFractions {
				raise := int(math.Floor(f * float64(potTotal)))
				if raise <= current.CurrentBet {
					continue
				}
				allIn := raise >= stack
				amount := raise
				if allIn {
					amount = stack
				}
				actions = append(actions, Action{Type: Raise, Amount: amount})
				if allIn {
					break
				}
			}
		}
		return actions
	}

	actions = append(actions, Action{Type: Check})

	if stack > 0 {
		lastAmount := -1
		for _, f := range b.cfg.BetFractions {
			bet := int(math.Floor(f * float64(potTotal)))
			if bet < 1 {
				bet = 1
			}
			allIn := bet >= stack
			amount := bet
			if allIn {
				amount = stack
			}
			if amount == lastAmount {
				continue
			}
			actions = append(actions, Action{Type: Bet, Amount: amount})
			lastAmount = amount
			if allIn {
				break
			}
		}
	}
	return actions
}

// applyAction mutates s in place to reflect the acting player taking a,
// then advances to the next non-folded player and marks s terminal if
// the hand has ended (one player left, or the river's round has ended).
func applyAction(s *DecisionState, a Action) {
	idx := s.CurrentPlayerIndex
	p := &s.Players[idx]
	maxBet := s.maxBet()

	switch a.Type {
	case Fold:
		p.Folded = true
		p.StillToAct = false

	case Call:
		toCall := maxBet - p.CurrentBet
		if toCall < 0 {
			toCall = 0
		}
		paid, _ := p.Stack.Remove(toCall)
		p.CurrentBet += paid
		p.StillToAct = false

	case Bet, Raise:
		target := maxBet + min(p.Stack.Chips(), a.Amount)
		delta := target - p.CurrentBet
		if delta < 0 {
			delta = 0
		}
		paid, _ := p.Stack.Remove(delta)
		p.CurrentBet += paid
		s.LastAggressorIndex = idx
		for i := range s.Players {
			if i != idx && !s.Players[i].Folded {
				s.Players[i].StillToAct = true
			}
		}
		p.StillToAct = false

	case Check:
		p.StillToAct = false
	}

	advanceTurn(s)

	if s.activeCount() <= 1 {
		s.Terminal = true
	} else if s.Street == River && s.roundEnded() {
		s.Terminal = true
	}
}

// advanceTurn moves CurrentPlayerIndex to the next non-folded player,
// wrapping modulo the seat count. If a full wrap finds no candidate (every
// player has folded), the index is left unchanged.
func advanceTurn(s *DecisionState) {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		next := (s.CurrentPlayerIndex + i) % n
		if !s.Players[next].Folded {
			s.CurrentPlayerIndex = next
			return
		}
	}
}
