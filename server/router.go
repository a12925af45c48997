package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"hand-ledger/server/cards"
	"hand-ledger/server/hand"
	"hand-ledger/server/ingest"
	"hand-ledger/server/store"
)

const maxBodyBytes = 1 << 20

// Router builds the HTTP surface. db may be nil: the compute endpoints keep
// working, results just aren't recorded and the read endpoints report 503.
func Router(db *store.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"ok": true, "storage": db != nil})
	})

	// Standalone split-pot formula: outcome and contribution already known.
	r.Post("/api/pnl", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			PotAmount        float64 `json:"pot_amount"`
			HeroContribution float64 `json:"hero_contribution"`
			IsWinner         bool    `json:"is_winner"`
			WinningPlayers   int     `json:"winning_players"`
		}
		if err := decodeBody(w, req, &in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pnl := hand.HeroPnL(in.PotAmount, in.HeroContribution, in.IsWinner, in.WinningPlayers)
		writeJSON(w, map[string]any{"pnl": pnl})
	})

	// Full pipeline: ingest a raw hand record, compute, optionally record.
	r.Post("/api/hands", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		h, err := ingest.Parse(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := computeResult(h)
		if db != nil {
			id, err := db.InsertHandResult(req.Context(), result)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			result.ID = id
		}
		writeJSON(w, result)
	})

	r.Get("/api/hands", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "storage not configured", http.StatusServiceUnavailable)
			return
		}
		limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
		rows, err := db.RecentHandResults(req.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"rows": rows})
	})

	r.Get("/api/hands/{id}", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "storage not configured", http.StatusServiceUnavailable)
			return
		}
		id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		res, err := db.GetHandResult(req.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, res)
	})

	return r
}

// computeResult runs the engine over a validated hand and packages the
// outcome for storage and for the API response.
func computeResult(h ingest.Hand) store.HandResult {
	total, byStreet := hand.Contributions(h.History)
	pnl, method := hand.Resolve(h.History)

	heroName := ""
	if hero, ok := h.History.Hero(); ok {
		heroName = hero.Name
	}

	// Street rows in play order, not map order.
	streets := make([]store.StreetContribution, 0, len(byStreet))
	for _, st := range h.History.Streets {
		if c, ok := byStreet[st.Name]; ok {
			streets = append(streets, store.StreetContribution{Street: st.Name, Contribution: c})
		}
	}

	return store.HandResult{
		HandID:           h.ID,
		Hero:             heroName,
		Pot:              h.History.Pot.Amount,
		HeroContribution: total,
		PnL:              pnl,
		Method:           string(method),
		HandClass:        cards.Describe(h.HoleCards, h.Board),
		Streets:          streets,
	}
}

func decodeBody(w http.ResponseWriter, req *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errors.New("decode request: " + strings.TrimSpace(err.Error()))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
