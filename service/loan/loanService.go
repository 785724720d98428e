package loansvc

import (
	"context"
	"errors"
	"time"

	"booklending/model"
	loanrepo "booklending/repository/loan"
	"booklending/service/fine"

	"github.com/google/uuid"
)

// errors used by controllers

type ErrCode string

const (
	ErrNoOpenLoan ErrCode = "NO_OPEN_LOAN"
	ErrBadPeriod  ErrCode = "BAD_PERIOD"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// DefaultPeriodDays is the loan period used when the caller does not pick one.
const DefaultPeriodDays = 14

type Repo = loanrepo.Repo

type Service interface {
	// Checkout records a loan for a borrow that the lending core has already
	// accepted. periodDays <= 0 selects the default period.
	Checkout(ctx context.Context, memberID, isbn string, periodDays int) (*model.Loan, error)

	// CloseLoan marks the member's open loan on the ISBN as returned.
	CloseLoan(ctx context.Context, memberID, isbn string) (*model.Loan, error)

	// History lists the member's loans, newest first.
	History(ctx context.Context, memberID string) ([]model.Loan, error)

	// OutstandingFine sums the fine over the member's overdue loans.
	OutstandingFine(ctx context.Context, memberID string) (float64, error)
}

type service struct {
	r    Repo
	calc fine.Calculator
	now  func() time.Time
}

func New(r Repo, calc fine.Calculator) Service {
	return &service{r: r, calc: calc, now: time.Now}
}

func (s *service) Checkout(ctx context.Context, memberID, isbn string, periodDays int) (*model.Loan, error) {
	if periodDays < 0 {
		return nil, makeErr(ErrBadPeriod)
	}
	if periodDays == 0 {
		periodDays = DefaultPeriodDays
	}

	now := s.now().UTC()
	l := &model.Loan{
		ID:         uuid.NewString(),
		MemberID:   memberID,
		ISBN:       isbn,
		BorrowedAt: now,
		DueAt:      now.AddDate(0, 0, periodDays),
	}
	if err := s.r.Insert(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) CloseLoan(ctx context.Context, memberID, isbn string) (*model.Loan, error) {
	l, err := s.r.FindOpen(ctx, memberID, isbn)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, makeErr(ErrNoOpenLoan)
	}

	now := s.now().UTC()
	if err := s.r.MarkReturned(ctx, l.ID, now); err != nil {
		return nil, err
	}
	l.MarkReturned(now)
	return l, nil
}

func (s *service) History(ctx context.Context, memberID string) ([]model.Loan, error) {
	return s.r.ListByMember(ctx, memberID)
}

func (s *service) OutstandingFine(ctx context.Context, memberID string) (float64, error) {
	loans, err := s.r.ListByMember(ctx, memberID)
	if err != nil {
		return 0, err
	}
	now := s.now()
	var total float64
	for i := range loans {
		total += s.calc.Fine(loans[i].DaysLateAt(now))
	}
	return total, nil
}
