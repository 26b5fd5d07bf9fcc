package gametree

import (
	"strconv"

	"github.com/lox/pokerengine/internal/card"
)

// ActionType distinguishes the kinds of edges a GameTreeNode can carry.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	Deal
)

func (a ActionType) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case Deal:
		return "deal"
	default:
		return "unknown"
	}
}

// Action labels one edge out of a GameTreeNode. Amount is meaningful only
// for Bet and Raise, where it is the increment added on top of the
// current maximum bet (capped at the acting player's stack). Cards is
// meaningful only for Deal, recording which community cards that branch
// deals.
type Action struct {
	Type   ActionType
	Amount int
	Cards  []card.Card
}

func (a Action) String() string {
	switch a.Type {
	case Bet, Raise:
		return a.Type.String() + " " + strconv.Itoa(a.Amount)
	case Deal:
		s := "deal"
		for _, c := range a.Cards {
			s += " " + c.String()
		}
		return s
	default:
		return a.Type.String()
	}
}
