// model/member.go
package model

type MemberCategory string

const (
	CategoryStudent MemberCategory = "STUDENT"
	CategoryFaculty MemberCategory = "FACULTY"
	CategoryGeneral MemberCategory = "GENERAL"
)

// borrowLimits maps a category to the number of books a member may hold at
// once. Anything not in the table falls back to the General limit.
var borrowLimits = map[MemberCategory]int{
	CategoryStudent: 5,
	CategoryFaculty: 10,
	CategoryGeneral: 3,
}

const defaultBorrowLimit = 3

// Member is a borrower. Identity is the ID. The Borrowed slice behaves as a
// set of ISBNs: only the lending service mutates it, through AddBorrowed and
// RemoveBorrowed.
type Member struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Category MemberCategory `json:"category"`
	Active   bool           `json:"active"`
	Borrowed []string       `json:"borrowed"`
}

// NewMember returns an active member with an empty borrowed set.
func NewMember(id, name, email, phone string, category MemberCategory) *Member {
	return &Member{
		ID:       id,
		Name:     name,
		Email:    email,
		Phone:    phone,
		Category: category,
		Active:   true,
		Borrowed: []string{},
	}
}

// BorrowLimit resolves the category to its limit, defaulting to General.
func (m *Member) BorrowLimit() int {
	if limit, ok := borrowLimits[m.Category]; ok {
		return limit
	}
	return defaultBorrowLimit
}

// CanBorrowMore reports whether the member is active and under their limit.
func (m *Member) CanBorrowMore() bool {
	return m.Active && len(m.Borrowed) < m.BorrowLimit()
}

// HasBorrowed reports whether the ISBN is in the borrowed set.
func (m *Member) HasBorrowed(isbn string) bool {
	for _, b := range m.Borrowed {
		if b == isbn {
			return true
		}
	}
	return false
}

// AddBorrowed inserts the ISBN into the borrowed set. No-op when already
// present, so duplicate entries never exist.
func (m *Member) AddBorrowed(isbn string) {
	if m.HasBorrowed(isbn) {
		return
	}
	m.Borrowed = append(m.Borrowed, isbn)
}

// RemoveBorrowed deletes the ISBN from the borrowed set. No-op when absent.
func (m *Member) RemoveBorrowed(isbn string) {
	for i, b := range m.Borrowed {
		if b == isbn {
			m.Borrowed = append(m.Borrowed[:i], m.Borrowed[i+1:]...)
			return
		}
	}
}

// BorrowedCount is the current size of the borrowed set.
func (m *Member) BorrowedCount() int {
	return len(m.Borrowed)
}
