package repository

import (
	"context"
	"database/sql"
)

// ContentRepo reads dashboard content.
type ContentRepo struct {
	db *sql.DB
}

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{db: db} }

// Highlight returns the first banner, or nil when none is seeded.
func (r *ContentRepo) Highlight(ctx context.Context) (*Highlight, error) {
	row := r.db.QueryRowContext(ctx, `SELECT title, subtitle FROM highlights ORDER BY id LIMIT 1`)
	var h Highlight
	if err := row.Scan(&h.Title, &h.Subtitle); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *ContentRepo) Openings(ctx context.Context) ([]Opening, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, note FROM openings ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Opening
	for rows.Next() {
		var o Opening
		if err := rows.Scan(&o.Name, &o.Note); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
