package hand

type ActionKind string

const (
	PostSmallBlind ActionKind = "post-small-blind"
	PostBigBlind   ActionKind = "post-big-blind"
	PostAnte       ActionKind = "post-ante"
	Bet            ActionKind = "bet"
	Raise          ActionKind = "raise"
	Call           ActionKind = "call"
	Fold           ActionKind = "fold"
	Check          ActionKind = "check"
	// Unknown marks an action kind the ingestion layer could not classify.
	// The engine skips these rather than failing the whole computation.
	Unknown ActionKind = ""
)

type Player struct {
	Name string `json:"name"`
	Hero bool   `json:"is_hero"`
}

// Action amounts are kind-dependent: bet and blind/ante amounts are
// incremental, a raise amount is the player's new street total ("raise to"),
// and a call amount is ignored (the engine sizes calls itself).
type Action struct {
	Player string     `json:"player"`
	Kind   ActionKind `json:"kind"`
	Amount float64    `json:"amount,omitempty"`
}

type Street struct {
	Name    string   `json:"name"`
	Actions []Action `json:"actions"`
}

type PotShare struct {
	Player string  `json:"player"`
	Amount float64 `json:"amount"`
}

type Pot struct {
	Amount float64 `json:"amount"`
	// Distribution, when present, is the authoritative record of who got
	// paid at hand resolution.
	Distribution []PotShare `json:"distribution,omitempty"`
	// HeroPnL is a previously recorded value used only when no other
	// resolution rule applies.
	HeroPnL float64 `json:"hero_pnl,omitempty"`
}

// History is one complete hand as handed over by the ingestion layer.
// It is treated as immutable: the engine never writes into it, so the same
// value can be resolved concurrently from any number of goroutines.
type History struct {
	Players []Player `json:"players"`
	Streets []Street `json:"streets"`
	Pot     Pot      `json:"pot"`
}

// Hero returns the flagged hero, if any. Ingestion guarantees at most one.
func (h History) Hero() (Player, bool) {
	for _, p := range h.Players {
		if p.Hero {
			return p, true
		}
	}
	return Player{}, false
}
