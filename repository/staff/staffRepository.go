package staffrepo

import (
	"context"
	"database/sql"

	"booklending/model"
)

type Repo interface {
	Create(ctx context.Context, s *model.Staff) error
	ByEmail(ctx context.Context, email string) (*model.Staff, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, s *model.Staff) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO staff(name, email, username, password_hash)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		s.Name, s.Email, s.Username, s.PasswordHash,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.Staff, error) {
	s := &model.Staff{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, username, password_hash, created_at
        FROM staff
        WHERE lower(email) = lower($1)`,
		email,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Username, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
