package handset

// Pot tracks each player's total chip contribution across a hand and
// resolves side pots: a player can only win back as much from any other
// player as that player put in.
type Pot struct {
	contributions map[int]int
}

// NewPot constructs an empty Pot.
func NewPot() *Pot {
	return &Pot{contributions: make(map[int]int)}
}

// AddContribution records chips a player has put into the pot.
func (p *Pot) AddContribution(playerID, chips int) {
	p.contributions[playerID] += chips
}

// Contribution returns the total chips a player has contributed so far.
func (p *Pot) Contribution(playerID int) int {
	return p.contributions[playerID]
}

// Total returns the sum of all contributions currently in the pot.
func (p *Pot) Total() int {
	total := 0
	for _, chips := range p.contributions {
		total += chips
	}
	return total
}

// Empty reports whether the pot has no chips in it.
func (p *Pot) Empty() bool {
	return len(p.contributions) == 0 || p.Total() == 0
}

// Clone returns an independent copy of the pot; mutating the clone never
// affects the original.
func (p *Pot) Clone() *Pot {
	contributions := make(map[int]int, len(p.contributions))
	for id, chips := range p.contributions {
		contributions[id] = chips
	}
	return &Pot{contributions: contributions}
}

// Clear resets the pot to empty.
func (p *Pot) Clear() {
	p.contributions = make(map[int]int)
}

// WinningsForPlayer resolves the winner's payout against every other
// contributor's remaining stake, capped at what the winner themself put
// in (so an all-in short stack can't win more than its own contribution
// from any one opponent), and zeroes out the satisfied contributions.
// Calling it repeatedly for successive side-pot winners (best hand first,
// then next-best among remaining contributors) distributes the whole pot
// correctly across multiple side pots.
func (p *Pot) WinningsForPlayer(playerID int) int {
	maxWinPerPlayer := p.contributions[playerID]
	p.contributions[playerID] = 0

	total := maxWinPerPlayer
	for pid, chips := range p.contributions {
		if pid == playerID {
			continue
		}
		winnings := chips
		if winnings > maxWinPerPlayer {
			winnings = maxWinPerPlayer
		}
		p.contributions[pid] -= winnings
		total += winnings
	}
	return total
}
