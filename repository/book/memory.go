package bookrepo

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"booklending/model"
)

// Memory is an in-memory implementation of Repo used by service tests.
// Writes can be forced to fail to exercise the storage-failure paths.
type Memory struct {
	mu      sync.Mutex
	books   map[string]model.Book
	failErr error
}

var _ Repo = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{books: make(map[string]model.Book)}
}

// FailWith makes every subsequent write return err. Pass nil to clear.
func (m *Memory) FailWith(err error) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
	return m
}

func (m *Memory) FindByISBN(_ context.Context, isbn string) (*model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[isbn]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *Memory) FindByTitle(_ context.Context, title string) ([]model.Book, error) {
	return m.search(func(b model.Book) bool {
		return title != "" && strings.Contains(strings.ToLower(b.Title), strings.ToLower(title))
	})
}

func (m *Memory) FindByAuthor(_ context.Context, author string) ([]model.Book, error) {
	return m.search(func(b model.Book) bool {
		return author != "" && strings.Contains(strings.ToLower(b.Author), strings.ToLower(author))
	})
}

func (m *Memory) search(match func(model.Book) bool) ([]model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Book{}
	for _, b := range m.books {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *Memory) Save(_ context.Context, b *model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.books[b.ISBN]; ok {
		return ErrDuplicate
	}
	m.books[b.ISBN] = *b
	return nil
}

func (m *Memory) Delete(_ context.Context, isbn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.books[isbn]; !ok {
		return errors.New("book not found")
	}
	delete(m.books, isbn)
	return nil
}

func (m *Memory) UpdateAvailableCopies(_ context.Context, isbn string, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	b, ok := m.books[isbn]
	if !ok {
		return errors.New("book not found")
	}
	if count < 0 || count > b.TotalCopies {
		return errors.New("update rejected")
	}
	b.AvailableCopies = count
	m.books[isbn] = b
	return nil
}
