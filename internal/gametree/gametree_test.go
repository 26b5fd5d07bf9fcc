package gametree

import (
	"math/rand"
	"testing"

	"github.com/lox/pokerengine/internal/board"
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/handset"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func mustHand(t *testing.T, a, b card.Card) handset.Hand {
	t.Helper()
	h, err := handset.New(a, b)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func mustStack(t *testing.T, chips int) handset.Stack {
	t.Helper()
	s, err := handset.NewStack(chips)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// headsUpRoot builds a two-player preflop decision state with both
// players already acted (round ended), ready to become a chance node.
func headsUpRoot(t *testing.T) DecisionState {
	t.Helper()
	d := deck.New(newRNG())
	p1Hand := mustHand(t, card.MustParse("Ah"), card.MustParse("Kh"))
	p2Hand := mustHand(t, card.MustParse("2c"), card.MustParse("7d"))
	d.Remove(p1Hand.Cards()...)
	d.Remove(p2Hand.Cards()...)

	b, err := board.New()
	if err != nil {
		t.Fatal(err)
	}

	pot := handset.NewPot()
	pot.AddContribution(0, 10)
	pot.AddContribution(1, 10)

	return DecisionState{
		Street:             Preflop,
		CurrentPlayerIndex: 0,
		LastAggressorIndex: NoAggressor,
		FirstToActIndex:    0,
		Players: []PlayerState{
			{ID: 0, Stack: mustStack(t, 100), Hand: p1Hand, CurrentBet: 0, StillToAct: false},
			{ID: 1, Stack: mustStack(t, 100), Hand: p2Hand, CurrentBet: 0, StillToAct: false},
		},
		Pot:   pot,
		Board: b,
		Deck:  d,
	}
}

func TestIsChanceNodeWhenRoundEndedAndBoardShort(t *testing.T) {
	s := headsUpRoot(t)
	if !s.IsChanceNode() {
		t.Fatal("expected chance node when round has ended and flop not yet dealt")
	}
}

func TestIsChanceNodeFalseWhenPlayerStillToAct(t *testing.T) {
	s := headsUpRoot(t)
	s.Players[1].StillToAct = true
	if s.IsChanceNode() {
		t.Fatal("expected no chance node while a player still has to act")
	}
}

func TestIsChanceNodeFalseOnRiver(t *testing.T) {
	s := headsUpRoot(t)
	s.Street = River
	b, _ := board.New(card.MustParse("2h"), card.MustParse("3h"), card.MustParse("4h"), card.MustParse("5h"), card.MustParse("6h"))
	s.Board = b
	if s.IsChanceNode() {
		t.Fatal("river rounds must never produce a chance node")
	}
}

func TestBuildTreeChanceNodeDealsEveryCombination(t *testing.T) {
	s := headsUpRoot(t)

	// Shrink the deck to exactly 4 undealt cards so C(4,3) = 4 children.
	remaining := s.Deck.CardsRemaining()
	if _, err := s.Deck.DealN(remaining - 4); err != nil {
		t.Fatal(err)
	}

	builder, err := NewGameTreeBuilder(GameTreeBuilderConfig{BetFractions: []float64{0.5}, MaxDepth: 1})
	if err != nil {
		t.Fatal(err)
	}

	root, err := builder.BuildTree(s)
	if err != nil {
		t.Fatal(err)
	}
	if root.Kind != Chance {
		t.Fatalf("Kind = %v, want Chance", root.Kind)
	}
	if len(root.Children) != 4 {
		t.Fatalf("len(Children) = %d, want 4 (C(4,3))", len(root.Children))
	}
	for _, edge := range root.Children {
		if edge.Action.Type != Deal {
			t.Errorf("edge action = %v, want Deal", edge.Action.Type)
		}
		if len(edge.Action.Cards) != 3 {
			t.Errorf("dealt %d cards, want 3", len(edge.Action.Cards))
		}
		if edge.Child.Kind != Terminal {
			t.Errorf("child Kind = %v, want Terminal (depth cap)", edge.Child.Kind)
		}
		if edge.Child.State.Street != Flop {
			t.Errorf("child Street = %v, want Flop", edge.Child.State.Street)
		}
		if edge.Child.State.Board.Size() != 3 {
			t.Errorf("child board size = %d, want 3", edge.Child.State.Board.Size())
		}
		for _, p := range edge.Child.State.Players {
			if p.CurrentBet != 0 {
				t.Errorf("player %d CurrentBet = %d, want 0 after street reset", p.ID, p.CurrentBet)
			}
		}
	}
}

func TestLegalActionsFacingBetOffersRaiseThenAllIn(t *testing.T) {
	s := headsUpRoot(t)
	s.Players[0].CurrentBet = 10
	s.Players[1].CurrentBet = 20
	s.Players[0].Stack = mustStack(t, 25) // small stack forces the last raise to be an all-in
	s.CurrentPlayerIndex = 0

	builder, err := NewGameTreeBuilder(GameTreeBuilderConfig{BetFractions: []float64{0.5, 1.0, 2.0}, MaxDepth: 2})
	if err != nil {
		t.Fatal(err)
	}
	actions := builder.legalActions(s)

	if actions[0].Type != Fold {
		t.Errorf("actions[0] = %v, want Fold", actions[0].Type)
	}
	if actions[1].Type != Call {
		t.Errorf("actions[1] = %v, want Call", actions[1].Type)
	}
	for _, a := range actions[2:] {
		if a.Type != Raise {
			t.Errorf("expected only Raise actions after fold/call, got %v", a.Type)
		}
	}
	// No two raise actions may share an amount once the stack caps them.
	seen := map[int]bool{}
	for _, a := range actions[2:] {
		if seen[a.Amount] {
			t.Errorf("duplicate raise amount %d", a.Amount)
		}
		seen[a.Amount] = true
	}
	last := actions[len(actions)-1]
	if last.Amount != 25 {
		t.Errorf("final raise amount = %d, want 25 (all-in cap)", last.Amount)
	}
}

func TestLegalActionsNoOutstandingBetOffersCheckAndBets(t *testing.T) {
	s := headsUpRoot(t)
	s.CurrentPlayerIndex = 0

	builder, err := NewGameTreeBuilder(GameTreeBuilderConfig{BetFractions: []float64{0.5, 1.0}, MaxDepth: 2})
	if err != nil {
		t.Fatal(err)
	}
	actions := builder.legalActions(s)
	if len(actions) == 0 || actions[0].Type != Check {
		t.Fatalf("actions[0] = %+v, want Check first", actions)
	}
	for _, a := range actions[1:] {
		if a.Type != Bet {
			t.Errorf("expected Bet actions after Check, got %v", a.Type)
		}
		if a.Amount < 1 {
			t.Errorf("bet amount %d must be at least 1", a.Amount)
		}
	}
}

func TestApplyActionFoldEndsHeadsUpHand(t *testing.T) {
	s := headsUpRoot(t)
	s.Players[1].CurrentBet = 10
	applyAction(&s, Action{Type: Fold})
	if !s.Players[0].Folded {
		t.Error("player 0 should be folded")
	}
	if !s.Terminal {
		t.Error("heads-up fold should mark state terminal")
	}
}

func TestApplyActionRaiseMarksOthersStillToAct(t *testing.T) {
	s := headsUpRoot(t)
	s.CurrentPlayerIndex = 0
	applyAction(&s, Action{Type: Raise, Amount: 20})
	if !s.Players[1].StillToAct {
		t.Error("opponent should be StillToAct after a raise")
	}
	if s.Players[0].StillToAct {
		t.Error("the raiser should no longer be StillToAct")
	}
	if s.LastAggressorIndex != 0 {
		t.Errorf("LastAggressorIndex = %d, want 0", s.LastAggressorIndex)
	}
	if s.Players[0].CurrentBet != 20 {
		t.Errorf("raiser CurrentBet = %d, want 20", s.Players[0].CurrentBet)
	}
}

func TestApplyActionCallMatchesOutstandingBet(t *testing.T) {
	s := headsUpRoot(t)
	s.Players[0].CurrentBet = 0
	s.Players[1].CurrentBet = 15
	s.CurrentPlayerIndex = 0
	applyAction(&s, Action{Type: Call})
	if s.Players[0].CurrentBet != 15 {
		t.Errorf("CurrentBet after call = %d, want 15", s.Players[0].CurrentBet)
	}
	if s.Players[0].Stack.Chips() != 85 {
		t.Errorf("stack after call = %d, want 85", s.Players[0].Stack.Chips())
	}
}

func TestAdvanceTurnSkipsFoldedPlayers(t *testing.T) {
	s := headsUpRoot(t)
	s.Players = append(s.Players, PlayerState{ID: 2, Stack: mustStack(t, 100), StillToAct: false})
	s.Players[1].Folded = true
	s.CurrentPlayerIndex = 0
	advanceTurn(&s)
	if s.CurrentPlayerIndex != 2 {
		t.Errorf("CurrentPlayerIndex = %d, want 2 (skipping folded seat 1)", s.CurrentPlayerIndex)
	}
}

func TestBuildTreeTerminalAtMaxDepth(t *testing.T) {
	s := headsUpRoot(t)
	s.Players[0].StillToAct = true // not round-ended -> decision node, not chance
	s.CurrentPlayerIndex = 0

	builder, err := NewGameTreeBuilder(GameTreeBuilderConfig{BetFractions: nil, MaxDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	root, err := builder.BuildTree(s)
	if err != nil {
		t.Fatal(err)
	}
	if root.Kind != Decision {
		t.Fatalf("Kind = %v, want Decision", root.Kind)
	}
	for _, edge := range root.Children {
		if edge.Child.Kind != Terminal {
			t.Errorf("child Kind = %v, want Terminal at depth cap", edge.Child.Kind)
		}
	}
}

func TestNewGameTreeBuilderRejectsBadConfig(t *testing.T) {
	if _, err := NewGameTreeBuilder(GameTreeBuilderConfig{MaxDepth: 0}); err == nil {
		t.Error("expected error for non-positive max depth")
	}
	if _, err := NewGameTreeBuilder(GameTreeBuilderConfig{MaxDepth: 2, BetFractions: []float64{0}}); err == nil {
		t.Error("expected error for a non-positive bet fraction")
	}
}
