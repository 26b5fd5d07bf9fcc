// Package ev computes expected value over a weighted distribution of
// terminal chip outcomes, plus convenience helpers for the common
// single-street call/raise/fold decisions.
package ev

// WeightedOutcome is one possible result with the probability weight it
// occurs with. Weights need not already sum to 1; Calculate normalizes.
type WeightedOutcome struct {
	Weight  float64
	Outcome float64
}

// Calculate returns the weighted average outcome, normalizing by the sum
// of weights. It returns 0 if the outcomes are empty or their weights sum
// to zero.
func Calculate(outcomes []WeightedOutcome) float64 {
	var weightedSum, totalWeight float64
	for _, o := range outcomes {
		weightedSum += o.Weight * o.Outcome
		totalWeight += o.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// CallEV computes the single-street EV of calling, given the hero's
// equity against the opponent's range, the pot size before the call, and
// the call amount.
func CallEV(equity float64, pot, callAmount int) float64 {
	return Calculate([]WeightedOutcome{
		{Weight: equity, Outcome: float64(pot + callAmount)},
		{Weight: 1.0 - equity, Outcome: float64(-callAmount)},
	})
}

// RaiseEV computes the single-street EV of raising and getting called,
// given equity, the pot before the raise, the raise size, and the
// opponent's call amount.
func RaiseEV(equity float64, pot, raiseAmount, opponentCall int) float64 {
	return Calculate([]WeightedOutcome{
		{Weight: equity, Outcome: float64(pot + raiseAmount + opponentCall)},
		{Weight: 1.0 - equity, Outcome: float64(-raiseAmount)},
	})
}

// FoldEV is always zero: folding forfeits the pot but risks nothing
// further.
func FoldEV() float64 {
	return 0.0
}
