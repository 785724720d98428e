package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"

	"booklending/model"
	staffrepo "booklending/repository/staff"
	"booklending/util/hash"
	jwtutil "booklending/util/jwt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadInput      = errors.New("bad input")
	ErrInvalidCreds  = errors.New("invalid credentials")
	ErrUsernameTaken = errors.New("username already taken")
)

type Service interface {
	Register(ctx context.Context, req model.RegisterStaffReq) (*model.Staff, string, error)
	Login(ctx context.Context, req model.LoginStaffReq) (*model.Staff, string, error)
}

type service struct {
	sr     staffrepo.Repo
	secret string
}

func New(sr staffrepo.Repo, secret string) Service { return &service{sr: sr, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterStaffReq) (*model.Staff, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Username) == "" || len(req.Password) < 6 {
		return nil, "", ErrBadInput
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	st := &model.Staff{
		Name:         req.Name,
		Email:        email,
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hashed,
	}

	if err := s.sr.Create(ctx, st); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, st.ID, "staff", 24)
	if err != nil {
		return nil, "", err
	}
	return st, token, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "staff_email") || strings.Contains(msg, "email") {
			return ErrEmailTaken
		}
		if strings.Contains(cn, "staff_username") || strings.Contains(msg, "username") {
			return ErrUsernameTaken
		}
		return ErrBadInput
	}
	return nil
}

func (s *service) Login(ctx context.Context, req model.LoginStaffReq) (*model.Staff, string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, "", ErrBadInput
	}

	st, err := s.sr.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", ErrInvalidCreds
	}
	if !hash.Check(st.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCreds
	}
	token, err := jwtutil.Issue(s.secret, st.ID, "staff", 24)
	if err != nil {
		return nil, "", err
	}
	return st, token, nil
}
