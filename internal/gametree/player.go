package gametree

import "github.com/lox/pokerengine/internal/handset"

// PlayerState is one player's seat in a DecisionState: their identity,
// remaining chips, hole cards, and betting status for the current round.
type PlayerState struct {
	ID         int
	Stack      handset.Stack
	Hand       handset.Hand
	CurrentBet int
	Folded     bool
	StillToAct bool

	// Position is a display-only label (e.g. "BTN", "SB", "BB") set by
	// callers that care about seat naming. It never affects equality,
	// ordering, or tree expansion.
	Position string
}
