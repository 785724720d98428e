package bookrepo

import (
	"context"
	"database/sql"
	"errors"

	"booklending/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned by Save when a book with the same ISBN exists.
var ErrDuplicate = errors.New("book already exists")

// Repo is the storage provider the lending service depends on. FindByISBN
// returns (nil, nil) when no book matches; every write reports a definitive
// error on failure, including when no row was affected.
type Repo interface {
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)
	FindByTitle(ctx context.Context, title string) ([]model.Book, error)
	FindByAuthor(ctx context.Context, author string) ([]model.Book, error)
	Save(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, isbn string) error
	UpdateAvailableCopies(ctx context.Context, isbn string, count int) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	const q = `
SELECT isbn, title, author, total_copies, available_copies, price
FROM books
WHERE isbn = $1`
	var b model.Book
	err := r.db.QueryRowContext(ctx, q, isbn).
		Scan(&b.ISBN, &b.Title, &b.Author, &b.TotalCopies, &b.AvailableCopies, &b.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) FindByTitle(ctx context.Context, title string) ([]model.Book, error) {
	const q = `
SELECT isbn, title, author, total_copies, available_copies, price
FROM books
WHERE title ILIKE '%' || $1 || '%' AND $1 <> ''
ORDER BY title`
	return r.queryBooks(ctx, q, title)
}

func (r *repo) FindByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	const q = `
SELECT isbn, title, author, total_copies, available_copies, price
FROM books
WHERE author ILIKE '%' || $1 || '%' AND $1 <> ''
ORDER BY title`
	return r.queryBooks(ctx, q, author)
}

func (r *repo) queryBooks(ctx context.Context, q, arg string) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author, &b.TotalCopies, &b.AvailableCopies, &b.Price); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Save(ctx context.Context, b *model.Book) error {
	const q = `
INSERT INTO books (isbn, title, author, total_copies, available_copies, price)
VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.ExecContext(ctx, q, b.ISBN, b.Title, b.Author, b.TotalCopies, b.AvailableCopies, b.Price)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, isbn string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE isbn = $1`, isbn)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return errors.New("book not found")
	}
	return nil
}

func (r *repo) UpdateAvailableCopies(ctx context.Context, isbn string, count int) error {
	const q = `
UPDATE books
SET available_copies = $2
WHERE isbn = $1
AND $2 BETWEEN 0 AND total_copies`
	res, err := r.db.ExecContext(ctx, q, isbn, count)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return errors.New("update rejected")
	}
	return nil
}
