package repository

import (
	"context"
	"database/sql"
)

// OfferRepo reads featured challenges.
type OfferRepo struct {
	db *sql.DB
}

func NewOfferRepo(db *sql.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

func (r *OfferRepo) List(ctx context.Context) ([]MatchOffer, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, opponent_name, opponent_rating, latency_ms, wager_token, wager_amount
	FROM match_offers ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MatchOffer
	for rows.Next() {
		var o MatchOffer
		if err := rows.Scan(&o.ID, &o.OpponentName, &o.OpponentRating, &o.LatencyMs, &o.WagerToken, &o.WagerAmount); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OfferRepo) Get(ctx context.Context, id string) (*MatchOffer, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, opponent_name, opponent_rating, latency_ms, wager_token, wager_amount
	FROM match_offers WHERE id = ?`, id)
	var o MatchOffer
	if err := row.Scan(&o.ID, &o.OpponentName, &o.OpponentRating, &o.LatencyMs, &o.WagerToken, &o.WagerAmount); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
