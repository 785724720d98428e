// repository/loan/loanRepository.go
package loanrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"booklending/model"
)

// Repo persists loan records, one row per borrow-to-return cycle.
type Repo interface {
	Insert(ctx context.Context, l *model.Loan) error
	FindOpen(ctx context.Context, memberID, isbn string) (*model.Loan, error)
	MarkReturned(ctx context.Context, loanID string, at time.Time) error
	ListByMember(ctx context.Context, memberID string) ([]model.Loan, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, l *model.Loan) error {
	const q = `
INSERT INTO loans (id, member_id, isbn, borrowed_at, due_at, returned)
VALUES ($1,$2,$3,$4,$5,FALSE)`
	_, err := r.db.ExecContext(ctx, q, l.ID, l.MemberID, l.ISBN, l.BorrowedAt, l.DueAt)
	return err
}

// FindOpen returns the oldest unreturned loan for the pair, nil when none.
func (r *repo) FindOpen(ctx context.Context, memberID, isbn string) (*model.Loan, error) {
	const q = `
SELECT id, member_id, isbn, borrowed_at, due_at, returned_at, returned
FROM loans
WHERE member_id = $1 AND isbn = $2 AND NOT returned
ORDER BY borrowed_at
LIMIT 1`
	var l model.Loan
	err := r.db.QueryRowContext(ctx, q, memberID, isbn).
		Scan(&l.ID, &l.MemberID, &l.ISBN, &l.BorrowedAt, &l.DueAt, &l.ReturnedAt, &l.Returned)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repo) MarkReturned(ctx context.Context, loanID string, at time.Time) error {
	const q = `
UPDATE loans
SET returned = TRUE, returned_at = $2
WHERE id = $1 AND NOT returned`
	res, err := r.db.ExecContext(ctx, q, loanID, at)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return errors.New("loan not found or already returned")
	}
	return nil
}

func (r *repo) ListByMember(ctx context.Context, memberID string) ([]model.Loan, error) {
	const q = `
SELECT id, member_id, isbn, borrowed_at, due_at, returned_at, returned
FROM loans
WHERE member_id = $1
ORDER BY borrowed_at DESC`
	rows, err := r.db.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Loan{}
	for rows.Next() {
		var l model.Loan
		if err := rows.Scan(&l.ID, &l.MemberID, &l.ISBN, &l.BorrowedAt, &l.DueAt, &l.ReturnedAt, &l.Returned); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
