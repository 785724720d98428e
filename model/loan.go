// model/loan.go
package model

import "time"

// Loan records one borrow-to-return cycle. Returned implies ReturnedAt is set.
type Loan struct {
	ID         string     `json:"id"`
	MemberID   string     `json:"member_id"`
	ISBN       string     `json:"isbn"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Returned   bool       `json:"returned"`
}

// MarkReturned sets the return date and flips the returned flag.
func (l *Loan) MarkReturned(at time.Time) {
	t := at
	l.ReturnedAt = &t
	l.Returned = true
}

// Overdue reports whether the loan is (or was returned) past its due date.
func (l *Loan) Overdue() bool {
	return l.OverdueAt(time.Now())
}

// OverdueAt evaluates Overdue against the given clock. For an open loan the
// reference date is now; for a returned loan it is the return date. A loan is
// overdue only when the reference date is strictly after the due date.
func (l *Loan) OverdueAt(now time.Time) bool {
	ref := now
	if l.Returned && l.ReturnedAt != nil {
		ref = *l.ReturnedAt
	}
	return daysBetween(l.DueAt, ref) > 0
}

// DaysLate is the number of whole calendar days past the due date, never
// negative.
func (l *Loan) DaysLate() int {
	return l.DaysLateAt(time.Now())
}

// DaysLateAt evaluates DaysLate against the given clock.
func (l *Loan) DaysLateAt(now time.Time) int {
	ref := now
	if l.Returned && l.ReturnedAt != nil {
		ref = *l.ReturnedAt
	}
	if d := daysBetween(l.DueAt, ref); d > 0 {
		return d
	}
	return 0
}

// DurationDays is how long the loan has been (or was) out, in calendar days.
func (l *Loan) DurationDays() int {
	return l.DurationDaysAt(time.Now())
}

// DurationDaysAt evaluates DurationDays against the given clock.
func (l *Loan) DurationDaysAt(now time.Time) int {
	ref := now
	if l.Returned && l.ReturnedAt != nil {
		ref = *l.ReturnedAt
	}
	return daysBetween(l.BorrowedAt, ref)
}

// daysBetween is the calendar-day difference to - from, ignoring the time of
// day on either side.
func daysBetween(from, to time.Time) int {
	f := civilDate(from)
	t := civilDate(to)
	return int(t.Sub(f).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
