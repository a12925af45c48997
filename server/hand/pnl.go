package hand

// HeroPnL is the standalone split-pot formula, usable when outcome and
// contribution are already known. Multiple winners split the pot equally;
// side pots and odd chips are not modeled. winningPlayers below 1 is
// treated as a single winner.
func HeroPnL(potAmount, heroContribution float64, isWinner bool, winningPlayers int) float64 {
	if !isWinner {
		return -heroContribution
	}
	if winningPlayers > 1 {
		return potAmount/float64(winningPlayers) - heroContribution
	}
	return potAmount - heroContribution
}
