package hand

// ResolutionMethod names which rule of the outcome chain produced a PnL.
// The rules are ordered by confidence: a recorded pot distribution is ground
// truth, fold and last-standing are logically certain, ShowdownGuess is a
// best-effort inference callers should treat accordingly, and
// RecordedFallback just echoes whatever value the caller supplied.
type ResolutionMethod string

const (
	ByDistribution     ResolutionMethod = "distribution"
	ByHeroFold         ResolutionMethod = "hero-fold"
	ByLastStanding     ResolutionMethod = "last-standing"
	ByShowdownGuess    ResolutionMethod = "showdown-guess"
	ByRecordedFallback ResolutionMethod = "recorded-fallback"
	ByNoHero           ResolutionMethod = "no-hero"
)

// Resolve computes the hero's signed profit or loss for one hand along with
// the rule that decided it. It is a total function: any input yields a
// number, never a panic.
func Resolve(h History) (float64, ResolutionMethod) {
	hero, ok := h.Hero()
	if !ok {
		return 0, ByNoHero
	}
	contribution, _ := Contributions(h)

	// Rule 1: authoritative pot distribution.
	if len(h.Pot.Distribution) > 0 {
		winners := 0
		heroWon := false
		for _, share := range h.Pot.Distribution {
			if share.Amount > 0 {
				winners++
				if share.Player == hero.Name {
					heroWon = true
				}
			}
		}
		return HeroPnL(h.Pot.Amount, contribution, heroWon, winners), ByDistribution
	}

	folded := foldedPlayers(h)

	// Rule 2: a hero fold forfeits the hand regardless of later records.
	if folded[hero.Name] {
		return -contribution, ByHeroFold
	}

	// Rule 3: everyone else folded, hero takes the pot uncontested.
	active := 0
	heroActive := false
	for _, p := range h.Players {
		if !folded[p.Name] {
			active++
			if p.Hero {
				heroActive = true
			}
		}
	}
	if active == 1 && heroActive {
		return h.Pot.Amount - contribution, ByLastStanding
	}

	// Rule 4: hero closing the final street with a call usually means a
	// losing showdown. This is a guess, not a record.
	if lastHeroActionIsCall(h, hero.Name) {
		return -contribution, ByShowdownGuess
	}

	// Rule 5: decline to guess further; defer to the recorded value.
	return h.Pot.HeroPnL, ByRecordedFallback
}

// HandHistoryPnL runs the full pipeline and returns only the signed PnL.
func HandHistoryPnL(h History) float64 {
	pnl, _ := Resolve(h)
	return pnl
}

func foldedPlayers(h History) map[string]bool {
	folded := make(map[string]bool)
	for _, st := range h.Streets {
		for _, a := range st.Actions {
			if a.Kind == Fold {
				folded[a.Player] = true
			}
		}
	}
	return folded
}

// lastHeroActionIsCall reports whether the hero's most recent action on the
// hand's final street (the last street with any action) is a call.
func lastHeroActionIsCall(h History, heroName string) bool {
	for i := len(h.Streets) - 1; i >= 0; i-- {
		st := h.Streets[i]
		if len(st.Actions) == 0 {
			continue
		}
		for j := len(st.Actions) - 1; j >= 0; j-- {
			if st.Actions[j].Player == heroName {
				return st.Actions[j].Kind == Call
			}
		}
		return false
	}
	return false
}
