package store

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// ErrNotFound is returned when a requested hand result does not exist.
var ErrNotFound = errors.New("hand result not found")

type StreetContribution struct {
	Street       string  `json:"street"`
	Contribution float64 `json:"contribution"`
}

// HandResult is one computed hand: the hero's total commitment, the signed
// PnL and the resolution rule that produced it, plus the per-street
// contribution breakdown.
type HandResult struct {
	ID               int64                `json:"id"`
	HandID           string               `json:"hand_id"`
	Hero             string               `json:"hero"`
	Pot              float64              `json:"pot"`
	HeroContribution float64              `json:"hero_contribution"`
	PnL              float64              `json:"pnl"`
	Method           string               `json:"method"`
	HandClass        string               `json:"hand_class,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	Streets          []StreetContribution `json:"streets,omitempty"`
}

// InsertHandResult stores a result and its street rows atomically and
// returns the new row id.
func (db *DB) InsertHandResult(ctx context.Context, r HandResult) (int64, error) {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) // safe if already committed

	var id int64
	err = tx.QueryRow(ctx, `
        INSERT INTO hand_results(hand_id, hero, pot, hero_contribution, pnl, method, hand_class)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id
    `, r.HandID, r.Hero, r.Pot, r.HeroContribution, r.PnL, r.Method, r.HandClass).Scan(&id)
	if err != nil {
		return 0, err
	}

	for i, sc := range r.Streets {
		if _, err := tx.Exec(ctx, `
            INSERT INTO street_contributions(hand_result_id, position, street, contribution)
            VALUES ($1,$2,$3,$4)
        `, id, i, sc.Street, sc.Contribution); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// GetHandResult fetches one result with its street breakdown.
func (db *DB) GetHandResult(ctx context.Context, id int64) (HandResult, error) {
	var r HandResult
	err := db.QueryRow(ctx, `
        SELECT id, hand_id, hero, pot, hero_contribution, pnl, method, hand_class, created_at
          FROM hand_results
         WHERE id = $1
    `, id).Scan(&r.ID, &r.HandID, &r.Hero, &r.Pot, &r.HeroContribution, &r.PnL, &r.Method, &r.HandClass, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return HandResult{}, ErrNotFound
		}
		return HandResult{}, err
	}

	rows, err := db.Query(ctx, `
        SELECT street, contribution
          FROM street_contributions
         WHERE hand_result_id = $1
         ORDER BY position
    `, id)
	if err != nil {
		return HandResult{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var sc StreetContribution
		if err := rows.Scan(&sc.Street, &sc.Contribution); err != nil {
			return HandResult{}, err
		}
		r.Streets = append(r.Streets, sc)
	}
	if err := rows.Err(); err != nil {
		return HandResult{}, err
	}
	return r, nil
}

// RecentHandResults lists the latest results, newest first, without street
// breakdowns. Per-hand rows only; this store does no cross-hand aggregation.
func (db *DB) RecentHandResults(ctx context.Context, limit int) ([]HandResult, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := db.Query(ctx, `
        SELECT id, hand_id, hero, pot, hero_contribution, pnl, method, hand_class, created_at
          FROM hand_results
         ORDER BY id DESC
         LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []HandResult{}
	for rows.Next() {
		var r HandResult
		if err := rows.Scan(&r.ID, &r.HandID, &r.Hero, &r.Pot, &r.HeroContribution, &r.PnL, &r.Method, &r.HandClass, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
