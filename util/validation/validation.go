// Package validation holds the pure predicates the lending core gates on.
// Every function returns a plain boolean; none of them error or panic.
package validation

import (
	"regexp"
	"strings"

	"booklending/model"
)

var (
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	phoneRe     = regexp.MustCompile(`^(08|\+628)\d{8,11}$`)
	isbn10Re    = regexp.MustCompile(`^\d{10}$`)
	isbn13Re    = regexp.MustCompile(`^\d{13}$`)
	separatorRe = regexp.MustCompile(`[\s\-]+`)
)

// IsNonBlank reports whether s has content after trimming.
func IsNonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidEmail checks a simple local@domain.tld shape.
func IsValidEmail(email string) bool {
	if !IsNonBlank(email) {
		return false
	}
	return emailRe.MatchString(email)
}

// IsValidPhone checks a local mobile number: leading 08 or +628 followed by
// 8-11 digits, after stripping spaces and hyphens.
func IsValidPhone(phone string) bool {
	if !IsNonBlank(phone) {
		return false
	}
	return phoneRe.MatchString(separatorRe.ReplaceAllString(phone, ""))
}

// IsValidISBN accepts exactly 10 or exactly 13 digits after stripping spaces
// and hyphens.
func IsValidISBN(isbn string) bool {
	if !IsNonBlank(isbn) {
		return false
	}
	clean := separatorRe.ReplaceAllString(isbn, "")
	return isbn10Re.MatchString(clean) || isbn13Re.MatchString(clean)
}

// IsValidBook checks the full field combination of a catalog entry.
func IsValidBook(b *model.Book) bool {
	if b == nil {
		return false
	}
	return IsValidISBN(b.ISBN) &&
		IsNonBlank(b.Title) &&
		IsNonBlank(b.Author) &&
		b.TotalCopies > 0 &&
		b.AvailableCopies >= 0 &&
		b.AvailableCopies <= b.TotalCopies &&
		b.Price >= 0
}

// IsValidMember checks identity, contact fields and that a category is set.
func IsValidMember(m *model.Member) bool {
	if m == nil {
		return false
	}
	return IsNonBlank(m.ID) &&
		IsNonBlank(m.Name) &&
		IsValidEmail(m.Email) &&
		IsValidPhone(m.Phone) &&
		m.Category != ""
}
