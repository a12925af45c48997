package hand

import "testing"

func heroAnd(names ...string) []Player {
	ps := []Player{{Name: "hero", Hero: true}}
	for _, n := range names {
		ps = append(ps, Player{Name: n})
	}
	return ps
}

func TestContributionsBlindThenCall(t *testing.T) {
	h := History{
		Players: heroAnd("villain"),
		Streets: []Street{
			{Name: "preflop", Actions: []Action{
				{Player: "hero", Kind: PostBigBlind, Amount: 5},
				{Player: "villain", Kind: Raise, Amount: 20},
				{Player: "hero", Kind: Call},
			}},
		},
	}
	total, byStreet := Contributions(h)
	if total != 20 {
		t.Fatalf("expected total 20 (5 blind + 15 call delta), got %v", total)
	}
	if byStreet["preflop"] != 20 {
		t.Fatalf("expected preflop contribution 20, got %v", byStreet["preflop"])
	}
}

func TestContributionsRaiseReplacesStreetTotal(t *testing.T) {
	// A raise amount is the new street total. Bet 10 then raise to 40 must
	// land on exactly 40, never 50.
	h := History{
		Players: heroAnd("villain"),
		Streets: []Street{
			{Name: "flop", Actions: []Action{
				{Player: "hero", Kind: Bet, Amount: 10},
				{Player: "villain", Kind: Raise, Amount: 25},
				{Player: "hero", Kind: Raise, Amount: 40},
			}},
		},
	}
	total, _ := Contributions(h)
	if total != 40 {
		t.Fatalf("raise must replace street total: expected 40, got %v", total)
	}
}

func TestContributionsCallDeltaGuard(t *testing.T) {
	// Hero already matches the highest bet; a spurious call adds nothing.
	h := History{
		Players: heroAnd("villain"),
		Streets: []Street{
			{Name: "turn", Actions: []Action{
				{Player: "hero", Kind: Bet, Amount: 50},
				{Player: "hero", Kind: Call},
			}},
		},
	}
	total, _ := Contributions(h)
	if total != 50 {
		t.Fatalf("non-positive call delta must be ignored: expected 50, got %v", total)
	}
}

func TestContributionsLaterRaiseSizesEarlierStreetCall(t *testing.T) {
	// The highest bet is known street-wide before hero actions are replayed,
	// so hero's call is sized against the villain raise that follows it.
	h := History{
		Players: heroAnd("villain"),
		Streets: []Street{
			{Name: "flop", Actions: []Action{
				{Player: "hero", Kind: Call},
				{Player: "villain", Kind: Raise, Amount: 30},
			}},
		},
	}
	total, _ := Contributions(h)
	if total != 30 {
		t.Fatalf("call must be sized against the street's highest bet: expected 30, got %v", total)
	}
}

func TestContributionsStreetsAreIndependent(t *testing.T) {
	h := History{
		Players: heroAnd("villain"),
		Streets: []Street{
			{Name: "preflop", Actions: []Action{
				{Player: "villain", Kind: Raise, Amount: 100},
				{Player: "hero", Kind: Call},
			}},
			{Name: "flop", Actions: []Action{
				{Player: "villain", Kind: Bet, Amount: 40},
				{Player: "hero", Kind: Call},
			}},
		},
	}
	total, byStreet := Contributions(h)
	if byStreet["preflop"] != 100 || byStreet["flop"] != 40 {
		t.Fatalf("per-street contributions wrong: %v", byStreet)
	}
	// The flop call owes 40, not 0: the preflop highest bet does not carry.
	if total != 140 {
		t.Fatalf("expected total 140, got %v", total)
	}
}

func TestContributionsAntesAndBlindsAddDirectly(t *testing.T) {
	h := History{
		Players: heroAnd("villain"),
		Streets: []Street{
			{Name: "preflop", Actions: []Action{
				{Player: "hero", Kind: PostAnte, Amount: 1},
				{Player: "hero", Kind: PostSmallBlind, Amount: 2},
				{Player: "villain", Kind: PostBigBlind, Amount: 5},
				{Player: "hero", Kind: Fold},
			}},
		},
	}
	total, _ := Contributions(h)
	if total != 3 {
		t.Fatalf("expected ante + small blind = 3, got %v", total)
	}
}

func TestContributionsIgnoresUnknownKindsAndChecks(t *testing.T) {
	h := History{
		Players: heroAnd("villain"),
		Streets: []Street{
			{Name: "river", Actions: []Action{
				{Player: "hero", Kind: Check},
				{Player: "hero", Kind: ActionKind("shows"), Amount: 999},
				{Player: "hero", Kind: Unknown, Amount: 500},
			}},
		},
	}
	total, _ := Contributions(h)
	if total != 0 {
		t.Fatalf("checks and unknown kinds must not move chips, got %v", total)
	}
}

func TestContributionsNoHero(t *testing.T) {
	h := History{
		Players: []Player{{Name: "a"}, {Name: "b"}},
		Streets: []Street{
			{Name: "preflop", Actions: []Action{{Player: "a", Kind: Bet, Amount: 10}}},
		},
	}
	total, byStreet := Contributions(h)
	if total != 0 {
		t.Fatalf("no hero means no contribution, got %v", total)
	}
	if len(byStreet) != 0 {
		t.Fatalf("expected empty street map, got %v", byStreet)
	}
}
