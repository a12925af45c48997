// Package ingest turns raw hand-history records into the normalized,
// immutable shape the PnL engine consumes. All string matching and input
// validation happens here so the engine can switch over a closed set of
// action kinds.
package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"hand-ledger/server/hand"
)

type PlayerRecord struct {
	Name      string   `json:"name"`
	IsHero    bool     `json:"is_hero"`
	HoleCards []string `json:"hole_cards,omitempty"`
}

type ActionRecord struct {
	Player string  `json:"player"`
	Action string  `json:"action"`
	Amount float64 `json:"amount,omitempty"`
}

type StreetRecord struct {
	Name    string         `json:"name"`
	Actions []ActionRecord `json:"actions"`
}

type ShareRecord struct {
	Player string  `json:"player"`
	Amount float64 `json:"amount"`
}

type PotRecord struct {
	Amount       float64       `json:"amount"`
	Distribution []ShareRecord `json:"distribution,omitempty"`
	HeroPnL      float64       `json:"hero_pnl,omitempty"`
}

// HandRecord is the wire shape accepted from upstream sources. The action
// field is free-form text; NormalizeAction maps it onto the engine's enum.
type HandRecord struct {
	HandID  string         `json:"hand_id,omitempty"`
	Players []PlayerRecord `json:"players"`
	Streets []StreetRecord `json:"streets"`
	Pot     PotRecord      `json:"pot"`
	Board   []string       `json:"board,omitempty"`
}

// Hand is a validated record ready for the engine, plus the display-only
// card fields the API surfaces alongside the computed result.
type Hand struct {
	ID        string
	History   hand.History
	HoleCards []string
	Board     []string
}

// Parse decodes and validates a JSON hand record.
func Parse(data []byte) (Hand, error) {
	var rec HandRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Hand{}, fmt.Errorf("decode hand record: %w", err)
	}
	return FromRecord(rec)
}

// FromRecord validates a decoded record and normalizes it for the engine.
// Amounts must be finite and non-negative; player names must be unique and
// at most one player may be flagged hero. A missing hand id gets a fresh
// uuid so results stay addressable once stored.
func FromRecord(rec HandRecord) (Hand, error) {
	out := Hand{ID: strings.TrimSpace(rec.HandID), Board: rec.Board}
	if out.ID == "" {
		out.ID = uuid.NewString()
	}

	seen := make(map[string]bool, len(rec.Players))
	heroes := 0
	for _, p := range rec.Players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return Hand{}, fmt.Errorf("player with empty name")
		}
		if seen[name] {
			return Hand{}, fmt.Errorf("duplicate player %q", name)
		}
		seen[name] = true
		if p.IsHero {
			heroes++
			if heroes > 1 {
				return Hand{}, fmt.Errorf("more than one hero flagged")
			}
			out.HoleCards = p.HoleCards
		}
		out.History.Players = append(out.History.Players, hand.Player{Name: name, Hero: p.IsHero})
	}

	for _, st := range rec.Streets {
		street := hand.Street{Name: strings.TrimSpace(st.Name)}
		for _, a := range st.Actions {
			if err := checkAmount(a.Amount); err != nil {
				return Hand{}, fmt.Errorf("street %q, player %q: %w", st.Name, a.Player, err)
			}
			street.Actions = append(street.Actions, hand.Action{
				Player: strings.TrimSpace(a.Player),
				Kind:   NormalizeAction(a.Action),
				Amount: a.Amount,
			})
		}
		out.History.Streets = append(out.History.Streets, street)
	}

	if err := checkAmount(rec.Pot.Amount); err != nil {
		return Hand{}, fmt.Errorf("pot: %w", err)
	}
	out.History.Pot.Amount = rec.Pot.Amount
	out.History.Pot.HeroPnL = rec.Pot.HeroPnL
	for _, s := range rec.Pot.Distribution {
		if err := checkAmount(s.Amount); err != nil {
			return Hand{}, fmt.Errorf("distribution, player %q: %w", s.Player, err)
		}
		out.History.Pot.Distribution = append(out.History.Pot.Distribution, hand.PotShare{
			Player: strings.TrimSpace(s.Player),
			Amount: s.Amount,
		})
	}

	return out, nil
}

func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("amount must be finite, got %v", v)
	}
	if v < 0 {
		return fmt.Errorf("amount must be non-negative, got %v", v)
	}
	return nil
}

// NormalizeAction maps free-form action text ("bets", "raises to", "posts
// small blind", ...) case-insensitively onto the engine's closed enum.
// Unrecognized text becomes hand.Unknown, which the engine tolerates.
func NormalizeAction(s string) hand.ActionKind {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	switch s {
	case "bet", "bets":
		return hand.Bet
	case "raise", "raises", "raise to", "raises to":
		return hand.Raise
	case "call", "calls":
		return hand.Call
	case "fold", "folds":
		return hand.Fold
	case "check", "checks":
		return hand.Check
	case "post small blind", "posts small blind", "small blind", "sb":
		return hand.PostSmallBlind
	case "post big blind", "posts big blind", "big blind", "bb":
		return hand.PostBigBlind
	case "post ante", "posts ante", "posts the ante", "ante":
		return hand.PostAnte
	}
	return hand.Unknown
}
