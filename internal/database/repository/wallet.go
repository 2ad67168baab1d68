package repository

import (
	"context"
	"database/sql"
)

// WalletRepo reads the demo wallet profile and its deposit history.
type WalletRepo struct {
	db *sql.DB
}

func NewWalletRepo(db *sql.DB) *WalletRepo { return &WalletRepo{db: db} }

func (r *WalletRepo) Profile(ctx context.Context, network string) (*WalletProfile, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT network, placeholder_address, estimated_balance, balance_token
	FROM wallet_profiles WHERE network = ?`, network)
	var p WalletProfile
	if err := row.Scan(&p.Network, &p.PlaceholderAddress, &p.EstimatedBalance, &p.BalanceToken); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *WalletRepo) Deposits(ctx context.Context, network string) ([]Deposit, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT amount, token FROM deposits WHERE network = ? ORDER BY sort_order, id`, network)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Deposit
	for rows.Next() {
		var d Deposit
		if err := rows.Scan(&d.Amount, &d.Token); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
