// model/book.go
package model

// Book is a catalog entry. Identity is the ISBN: two records with the same
// ISBN describe the same book regardless of the other fields.
type Book struct {
	ISBN            string  `json:"isbn"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	TotalCopies     int     `json:"total_copies"`
	AvailableCopies int     `json:"available_copies"`
	Price           float64 `json:"price"`
}

// Available reports whether at least one copy can be lent out.
func (b *Book) Available() bool {
	return b.AvailableCopies > 0
}

// Equal compares by identity (ISBN) only.
func (b *Book) Equal(other *Book) bool {
	if other == nil {
		return false
	}
	return b.ISBN == other.ISBN
}
