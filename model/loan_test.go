package model_test

import (
	"testing"
	"time"

	"booklending/model"

	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func openLoan(borrowed, due time.Time) *model.Loan {
	return &model.Loan{
		ID:         "L1",
		MemberID:   "A1",
		ISBN:       "1234567890",
		BorrowedAt: borrowed,
		DueAt:      due,
	}
}

func TestOverdue(t *testing.T) {
	now := day(0)

	// Open loan, due yesterday: overdue.
	require.True(t, openLoan(day(-7), day(-1)).OverdueAt(now))

	// Open loan, due tomorrow: not overdue.
	require.False(t, openLoan(day(-7), day(1)).OverdueAt(now))

	// Returned after the due date: overdue.
	late := openLoan(day(-7), day(-3))
	late.MarkReturned(now)
	require.True(t, late.OverdueAt(now))

	// Returned exactly on the due date: not overdue.
	onTime := openLoan(day(-7), day(0))
	onTime.MarkReturned(now)
	require.False(t, onTime.OverdueAt(now))
}

func TestDaysLate(t *testing.T) {
	now := day(0)

	// Returned 3 days past due.
	p1 := openLoan(day(-7), day(-3))
	p1.MarkReturned(now)
	require.Equal(t, 3, p1.DaysLateAt(now))

	// Returned early: never negative.
	p2 := openLoan(day(-7), day(0))
	p2.MarkReturned(day(-1))
	require.Equal(t, 0, p2.DaysLateAt(now))

	// Open, due yesterday.
	require.Equal(t, 1, openLoan(day(-7), day(-1)).DaysLateAt(now))

	// Open, due tomorrow.
	require.Equal(t, 0, openLoan(day(-7), day(1)).DaysLateAt(now))
}

func TestDurationDays(t *testing.T) {
	now := day(0)

	// Open loan runs from borrow date to today.
	require.Equal(t, 7, openLoan(day(-7), day(-1)).DurationDaysAt(now))

	// Returned loan runs from borrow date to return date.
	p := openLoan(day(-10), day(-1))
	p.MarkReturned(day(-2))
	require.Equal(t, 8, p.DurationDaysAt(now))
}

func TestMarkReturned(t *testing.T) {
	l := openLoan(day(-7), day(0))
	require.False(t, l.Returned)
	require.Nil(t, l.ReturnedAt)

	l.MarkReturned(day(0))
	require.True(t, l.Returned)
	require.NotNil(t, l.ReturnedAt)
	require.Equal(t, day(0), *l.ReturnedAt)
}

func TestDayArithmeticIgnoresTimeOfDay(t *testing.T) {
	// Due late in the evening, checked early next morning: still 1 day late.
	l := openLoan(day(-7), time.Date(2026, time.March, 14, 23, 0, 0, 0, time.UTC))
	now := time.Date(2026, time.March, 15, 1, 0, 0, 0, time.UTC)
	require.True(t, l.OverdueAt(now))
	require.Equal(t, 1, l.DaysLateAt(now))
}
