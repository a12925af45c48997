package hand

// Contributions reconstructs how many chips the hero committed, per street
// and in total. Streets are independent: the highest-bet tracker used for
// call sizing resets to zero on every street, and committed chips are never
// returned mid-hand, so the total is non-decreasing across streets.
func Contributions(h History) (total float64, byStreet map[string]float64) {
	hero, ok := h.Hero()
	if !ok {
		return 0, map[string]float64{}
	}
	byStreet = make(map[string]float64, len(h.Streets))
	for _, st := range h.Streets {
		c := streetContribution(st, hero.Name)
		byStreet[st.Name] = c
		total += c
	}
	return total, byStreet
}

func streetContribution(st Street, heroName string) float64 {
	// First pass: the street's highest bet, from every player's bets and
	// raises, so early hero calls are sized against later aggression too.
	highest := 0.0
	for _, a := range st.Actions {
		if (a.Kind == Bet || a.Kind == Raise) && a.Amount > highest {
			highest = a.Amount
		}
	}

	committed := 0.0
	for _, a := range st.Actions {
		if a.Player != heroName {
			// Opponent aggression stays visible for call sizing as the
			// scan moves forward through the street.
			if (a.Kind == Bet || a.Kind == Raise) && a.Amount > highest {
				highest = a.Amount
			}
			continue
		}
		switch a.Kind {
		case PostSmallBlind, PostBigBlind, PostAnte:
			committed += a.Amount
		case Bet:
			committed += a.Amount
		case Raise:
			// A raise amount is the hero's new total for the street, not an
			// increment: it replaces the running commitment outright.
			committed = a.Amount
		case Call:
			// Calling owes the difference up to the street's highest bet.
			// A zero or negative difference is ignored so malformed input
			// can never shrink the commitment or double-charge a call.
			if owed := highest - committed; owed > 0 {
				committed += owed
			}
		case Fold, Check:
			// No chips move.
		default:
			// Unrecognized kinds are tolerated, not rejected.
		}
	}
	return committed
}
