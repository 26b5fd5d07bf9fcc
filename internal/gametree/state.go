package gametree

import (
	"github.com/lox/pokerengine/internal/board"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/handset"
)

// NoAggressor is the LastAggressorIndex value meaning no player has bet
// or raised yet this round.
const NoAggressor = -1

// DecisionState is the snapshot the builder expands. Each expansion
// copies a state to produce a child; there is no aliasing between parent
// and child.
//
// Invariants the builder relies on: the deck holds no card present in any
// player's hand or on the board; a folded player is never StillToAct; a
// terminal state is never expanded further; every CurrentBet and every
// stack's chip count stays non-negative.
type DecisionState struct {
	Street             Street
	CurrentPlayerIndex int
	LastAggressorIndex int
	FirstToActIndex    int

	Players  []PlayerState
	Pot      *handset.Pot
	Board    *board.Board
	Deck     *deck.Deck
	Terminal bool
}

// Clone returns an independent copy: mutating the clone never affects the
// original, matching the "no aliasing between parent and child" rule.
func (s DecisionState) Clone() DecisionState {
	players := make([]PlayerState, len(s.Players))
	copy(players, s.Players)
	return DecisionState{
		Street:             s.Street,
		CurrentPlayerIndex: s.CurrentPlayerIndex,
		LastAggressorIndex: s.LastAggressorIndex,
		FirstToActIndex:    s.FirstToActIndex,
		Players:            players,
		Pot:                s.Pot.Clone(),
		Board:              s.Board.Clone(),
		Deck:               s.Deck.Clone(),
		Terminal:           s.Terminal,
	}
}

// activeCount returns the number of players who have not folded.
func (s DecisionState) activeCount() int {
	n := 0
	for _, p := range s.Players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// roundEnded reports whether every non-folded player has acted: no one
// still has StillToAct set.
func (s DecisionState) roundEnded() bool {
	for _, p := range s.Players {
		if !p.Folded && p.StillToAct {
			return false
		}
	}
	return true
}

// needsDeal reports whether the board is short of the cards required for
// the street after the current one.
func (s DecisionState) needsDeal() bool {
	switch s.Street {
	case Preflop:
		return s.Board.Size() < 3
	case Flop:
		return s.Board.Size() < 4
	case Turn:
		return s.Board.Size() < 5
	default: // River
		return false
	}
}

// IsChanceNode reports whether this state's betting round has ended and
// the next street's community cards have not yet been dealt. River
// rounds never produce a chance node; they terminate instead.
func (s DecisionState) IsChanceNode() bool {
	return !s.Terminal && s.roundEnded() && s.needsDeal()
}

// IsTerminal reports whether play has ended at this state.
func (s DecisionState) IsTerminal() bool {
	return s.Terminal
}

// maxBet returns the largest CurrentBet among non-folded players.
func (s DecisionState) maxBet() int {
	max := 0
	for _, p := range s.Players {
		if !p.Folded && p.CurrentBet > max {
			max = p.CurrentBet
		}
	}
	return max
}
