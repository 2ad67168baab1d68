package repository

import (
	"context"
	"database/sql"
)

// SecurityRepo reads the anti-fraud report.
type SecurityRepo struct {
	db *sql.DB
}

func NewSecurityRepo(db *sql.DB) *SecurityRepo { return &SecurityRepo{db: db} }

// Report returns the latest report with its checks, or nil when none exists.
func (r *SecurityRepo) Report(ctx context.Context) (*SecurityReport, error) {
	var id int64
	var rep SecurityReport
	row := r.db.QueryRowContext(ctx, `SELECT id, risk_score FROM security_reports ORDER BY id DESC LIMIT 1`)
	if err := row.Scan(&id, &rep.RiskScore); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
	SELECT label, passed FROM security_checks WHERE report_id = ? ORDER BY sort_order, id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c SecurityCheck
		if err := rows.Scan(&c.Label, &c.Passed); err != nil {
			return nil, err
		}
		rep.Checks = append(rep.Checks, c)
	}
	return &rep, rows.Err()
}
