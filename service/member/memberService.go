package membersvc

import (
	"context"
	"errors"

	"booklending/model"
	memberrepo "booklending/repository/member"
	"booklending/util/validation"
)

var (
	ErrBadInput = errors.New("invalid member")
	ErrNotFound = errors.New("member not found")
)

type Repo = memberrepo.Repo

type Service interface {
	Register(ctx context.Context, m *model.Member) error
	Get(ctx context.Context, id string) (*model.Member, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Register(ctx context.Context, m *model.Member) error {
	if !validation.IsValidMember(m) {
		return ErrBadInput
	}
	if m.Borrowed == nil {
		m.Borrowed = []string{}
	}
	return s.r.Create(ctx, m)
}

func (s *service) Get(ctx context.Context, id string) (*model.Member, error) {
	m, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *service) SetActive(ctx context.Context, id string, active bool) error {
	return s.r.SetActive(ctx, id, active)
}
