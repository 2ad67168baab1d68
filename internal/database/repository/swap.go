package repository

import (
	"context"
	"database/sql"
)

// SwapRepo reads swap quotes.
type SwapRepo struct {
	db *sql.DB
}

func NewSwapRepo(db *sql.DB) *SwapRepo { return &SwapRepo{db: db} }

func (r *SwapRepo) Pair(ctx context.Context, from, to string) (*SwapPair, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT from_token, to_token, rate, network_fee
	FROM swap_pairs WHERE from_token = ? AND to_token = ?`, from, to)
	var p SwapPair
	if err := row.Scan(&p.FromToken, &p.ToToken, &p.Rate, &p.NetworkFee); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SwapRepo) Liquidity(ctx context.Context, from, to string) ([]LiquidityQuote, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT from_token, to_token, rate FROM liquidity_quotes
	WHERE from_token = ? AND to_token = ? ORDER BY sort_order, id`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LiquidityQuote
	for rows.Next() {
		var q LiquidityQuote
		if err := rows.Scan(&q.FromToken, &q.ToToken, &q.Rate); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
