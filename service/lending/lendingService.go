// Package lending is the core of the system: it owns every state transition on
// catalog availability and member borrowed sets. All failures collapse to
// false / nil / empty per the service contract; callers that want a cause can
// raise the log level to debug.
package lending

import (
	"context"
	"log/slog"

	"booklending/model"
	bookrepo "booklending/repository/book"
	"booklending/util/validation"
)

type Service interface {
	// AddBook persists a new catalog entry. False when the book is invalid
	// or an entry with the same ISBN already exists.
	AddBook(ctx context.Context, b *model.Book) bool

	// RemoveBook deletes a catalog entry. False when the ISBN is malformed,
	// the book is unknown, or copies are still out on loan.
	RemoveBook(ctx context.Context, isbn string) bool

	// FindByISBN returns the catalog entry, or nil for a malformed or
	// unknown ISBN.
	FindByISBN(ctx context.Context, isbn string) *model.Book

	FindByTitle(ctx context.Context, title string) []model.Book
	FindByAuthor(ctx context.Context, author string) []model.Book

	// IsAvailable reports whether the book exists with at least one free copy.
	IsAvailable(ctx context.Context, isbn string) bool

	// AvailableCount is the book's free-copy count, 0 when unknown.
	AvailableCount(ctx context.Context, isbn string) int

	// Borrow checks member eligibility and book availability, then decrements
	// availability in storage and records the ISBN on the member. Nothing is
	// mutated until every check has passed.
	Borrow(ctx context.Context, isbn string, m *model.Member) bool

	// Return hands a copy back: availability is incremented in storage and the
	// ISBN removed from the member's borrowed set.
	Return(ctx context.Context, isbn string, m *model.Member) bool
}

type service struct {
	books bookrepo.Repo
	log   *slog.Logger
}

func New(books bookrepo.Repo, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{books: books, log: log}
}

func (s *service) AddBook(ctx context.Context, b *model.Book) bool {
	if !validation.IsValidBook(b) {
		s.log.Debug("add book rejected", "reason", "invalid book")
		return false
	}

	existing, err := s.books.FindByISBN(ctx, b.ISBN)
	if err != nil {
		s.log.Debug("add book rejected", "isbn", b.ISBN, "err", err)
		return false
	}
	if existing != nil {
		s.log.Debug("add book rejected", "isbn", b.ISBN, "reason", "duplicate isbn")
		return false
	}

	if err := s.books.Save(ctx, b); err != nil {
		s.log.Debug("add book rejected", "isbn", b.ISBN, "err", err)
		return false
	}
	return true
}

func (s *service) RemoveBook(ctx context.Context, isbn string) bool {
	if !validation.IsValidISBN(isbn) {
		return false
	}

	b, err := s.books.FindByISBN(ctx, isbn)
	if err != nil || b == nil {
		return false
	}

	// Copies out on loan block deletion.
	if b.AvailableCopies < b.TotalCopies {
		s.log.Debug("remove book rejected", "isbn", isbn, "reason", "copies on loan")
		return false
	}

	if err := s.books.Delete(ctx, isbn); err != nil {
		s.log.Debug("remove book failed", "isbn", isbn, "err", err)
		return false
	}
	return true
}

func (s *service) FindByISBN(ctx context.Context, isbn string) *model.Book {
	if !validation.IsValidISBN(isbn) {
		return nil
	}
	b, err := s.books.FindByISBN(ctx, isbn)
	if err != nil {
		return nil
	}
	return b
}

// Title and author searches pass the query through untouched; the storage
// provider answers blank queries with an empty list.
func (s *service) FindByTitle(ctx context.Context, title string) []model.Book {
	out, err := s.books.FindByTitle(ctx, title)
	if err != nil {
		return []model.Book{}
	}
	return out
}

func (s *service) FindByAuthor(ctx context.Context, author string) []model.Book {
	out, err := s.books.FindByAuthor(ctx, author)
	if err != nil {
		return []model.Book{}
	}
	return out
}

func (s *service) IsAvailable(ctx context.Context, isbn string) bool {
	b, err := s.books.FindByISBN(ctx, isbn)
	if err != nil {
		return false
	}
	return b != nil && b.Available()
}

func (s *service) AvailableCount(ctx context.Context, isbn string) int {
	b, err := s.books.FindByISBN(ctx, isbn)
	if err != nil || b == nil {
		return 0
	}
	return b.AvailableCopies
}

func (s *service) Borrow(ctx context.Context, isbn string, m *model.Member) bool {
	if !validation.IsValidISBN(isbn) || !validation.IsValidMember(m) {
		return false
	}
	if !m.Active {
		s.log.Debug("borrow rejected", "member", m.ID, "reason", "inactive")
		return false
	}
	if !m.CanBorrowMore() {
		s.log.Debug("borrow rejected", "member", m.ID, "reason", "limit reached")
		return false
	}

	b, err := s.books.FindByISBN(ctx, isbn)
	if err != nil || b == nil {
		return false
	}
	if !b.Available() {
		s.log.Debug("borrow rejected", "isbn", isbn, "reason", "no copies available")
		return false
	}

	// All checks passed; decrement availability first, then record the loan
	// on the member only if storage confirmed the update.
	if err := s.books.UpdateAvailableCopies(ctx, isbn, b.AvailableCopies-1); err != nil {
		s.log.Debug("borrow failed", "isbn", isbn, "err", err)
		return false
	}
	m.AddBorrowed(isbn)
	return true
}

func (s *service) Return(ctx context.Context, isbn string, m *model.Member) bool {
	if !validation.IsValidISBN(isbn) || m == nil {
		return false
	}
	if !m.HasBorrowed(isbn) {
		s.log.Debug("return rejected", "member", m.ID, "isbn", isbn, "reason", "not borrowed by member")
		return false
	}

	b, err := s.books.FindByISBN(ctx, isbn)
	if err != nil || b == nil {
		return false
	}

	if err := s.books.UpdateAvailableCopies(ctx, isbn, b.AvailableCopies+1); err != nil {
		s.log.Debug("return failed", "isbn", isbn, "err", err)
		return false
	}
	m.RemoveBorrowed(isbn)
	return true
}
