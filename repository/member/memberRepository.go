package memberrepo

import (
	"context"
	"database/sql"
	"errors"

	"booklending/model"
)

// Repo persists member records. ByID rehydrates the borrowed set so the
// lending service always sees the member aggregate whole; SaveBorrowed writes
// the set back after the service has mutated it.
type Repo interface {
	Create(ctx context.Context, m *model.Member) error
	ByID(ctx context.Context, id string) (*model.Member, error)
	SetActive(ctx context.Context, id string, active bool) error
	SaveBorrowed(ctx context.Context, m *model.Member) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, m *model.Member) error {
	const q = `
INSERT INTO members (id, name, email, phone, category, active)
VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Name, m.Email, m.Phone, m.Category, m.Active)
	return err
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Member, error) {
	m := &model.Member{Borrowed: []string{}}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, category, active
		FROM members
		WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Category, &m.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT isbn FROM member_borrowed_books WHERE member_id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var isbn string
		if err := rows.Scan(&isbn); err != nil {
			return nil, err
		}
		m.Borrowed = append(m.Borrowed, isbn)
	}
	return m, rows.Err()
}

func (r *repo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE members SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return errors.New("member not found")
	}
	return nil
}

func (r *repo) SaveBorrowed(ctx context.Context, m *model.Member) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM member_borrowed_books WHERE member_id = $1`, m.ID); err != nil {
		return err
	}
	const ins = `INSERT INTO member_borrowed_books (member_id, isbn) VALUES ($1,$2)`
	for _, isbn := range m.Borrowed {
		if _, err = tx.ExecContext(ctx, ins, m.ID, isbn); err != nil {
			return err
		}
	}
	return tx.Commit()
}
