package validation_test

import (
	"testing"

	"booklending/model"
	"booklending/util/validation"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"mahasiswa@univ.ac.id",
		"test@gmail.com",
		"user123@domain.org",
	}
	for _, e := range valid {
		require.True(t, validation.IsValidEmail(e), e)
	}

	invalid := []string{
		"",
		" ",
		"email-without-at.com",
		"email@",
		"@domain.com",
		"email@domain.com,",
	}
	for _, e := range invalid {
		require.False(t, validation.IsValidEmail(e), e)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"081234567890",
		"+628123456789",
		"+62812-3456-7890",
		"0812 3456 7890",
	}
	for _, p := range valid {
		require.True(t, validation.IsValidPhone(p), p)
	}

	invalid := []string{
		"",
		" ",
		"123456789",
		"07123456789",
		"081234",
		"-627123456789",
		"0812345678901234",
	}
	for _, p := range invalid {
		require.False(t, validation.IsValidPhone(p), p)
	}
}

func TestIsValidISBN(t *testing.T) {
	valid := []string{
		"1234567890",
		"1234567890123",
		"123-456-789-0",
		"978 1234567890",
	}
	for _, i := range valid {
		require.True(t, validation.IsValidISBN(i), i)
	}

	invalid := []string{
		"",
		" ",
		"123456789",     // 9 digits
		"ABCDEFGHIJ",    // not digits
		"12345678901",   // 11 digits
		"123456789012a", // digit check after stripping
	}
	for _, i := range invalid {
		require.False(t, validation.IsValidISBN(i), i)
	}
}

func validBook() *model.Book {
	return &model.Book{
		ISBN:            "1234567890",
		Title:           "Pemrograman Go",
		Author:          "John Doe",
		TotalCopies:     5,
		AvailableCopies: 5,
		Price:           150000,
	}
}

func TestIsValidBook(t *testing.T) {
	require.True(t, validation.IsValidBook(validBook()))
	require.False(t, validation.IsValidBook(nil))

	cases := map[string]func(*model.Book){
		"bad isbn":              func(b *model.Book) { b.ISBN = "123" },
		"blank title":           func(b *model.Book) { b.Title = " " },
		"blank author":          func(b *model.Book) { b.Author = "" },
		"zero total":            func(b *model.Book) { b.TotalCopies = 0 },
		"negative available":    func(b *model.Book) { b.AvailableCopies = -1 },
		"available above total": func(b *model.Book) { b.AvailableCopies = 6 },
		"negative price":        func(b *model.Book) { b.Price = -10000 },
	}
	for name, mutate := range cases {
		b := validBook()
		mutate(b)
		require.False(t, validation.IsValidBook(b), name)
	}
}

func TestIsValidMember(t *testing.T) {
	m := model.NewMember("A001", "John Doe", "john@univ.ac.id", "081234567890", model.CategoryStudent)
	require.True(t, validation.IsValidMember(m))
	require.False(t, validation.IsValidMember(nil))

	cases := map[string]func(*model.Member){
		"blank id":       func(m *model.Member) { m.ID = " " },
		"blank name":     func(m *model.Member) { m.Name = "" },
		"bad email":      func(m *model.Member) { m.Email = "not-an-email" },
		"bad phone":      func(m *model.Member) { m.Phone = "12345" },
		"unset category": func(m *model.Member) { m.Category = "" },
	}
	for name, mutate := range cases {
		mm := model.NewMember("A001", "John Doe", "john@univ.ac.id", "081234567890", model.CategoryStudent)
		mutate(mm)
		require.False(t, validation.IsValidMember(mm), name)
	}
}

func TestIsNonBlank(t *testing.T) {
	require.True(t, validation.IsNonBlank("x"))
	require.True(t, validation.IsNonBlank(" x "))
	require.False(t, validation.IsNonBlank(""))
	require.False(t, validation.IsNonBlank("   "))
}
