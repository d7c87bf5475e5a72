package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// SubmissionRepo handles the submission journal.
type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

// Append stores s. A missing ID is generated.
func (r *SubmissionRepo) Append(ctx context.Context, s Submission) (Submission, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO submissions(id, name, email, message, outcome, detail, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`, s.ID, s.Name, s.Email, s.Message, s.Outcome, s.Detail, s.CreatedAt)
	if err != nil {
		return Submission{}, err
	}
	return s, nil
}

// List returns up to limit submissions, newest first.
func (r *SubmissionRepo) List(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, email, message, outcome, detail, created_at
	FROM submissions
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.Outcome, &s.Detail, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the number of journaled submissions.
func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n)
	return n, err
}
