package membersvc_test

import (
	"context"
	"errors"
	"testing"

	"booklending/model"
	membersvc "booklending/service/member"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	createFn    func(ctx context.Context, m *model.Member) error
	byIDFn      func(ctx context.Context, id string) (*model.Member, error)
	setActiveFn func(ctx context.Context, id string, active bool) error
}

func (r *repoMock) Create(ctx context.Context, m *model.Member) error {
	if r.createFn == nil {
		return nil
	}
	return r.createFn(ctx, m)
}

func (r *repoMock) ByID(ctx context.Context, id string) (*model.Member, error) {
	if r.byIDFn == nil {
		return nil, nil
	}
	return r.byIDFn(ctx, id)
}

func (r *repoMock) SetActive(ctx context.Context, id string, active bool) error {
	if r.setActiveFn == nil {
		return nil
	}
	return r.setActiveFn(ctx, id, active)
}

func (r *repoMock) SaveBorrowed(ctx context.Context, m *model.Member) error { return nil }

func TestRegister(t *testing.T) {
	var created *model.Member
	svc := membersvc.New(&repoMock{
		createFn: func(ctx context.Context, m *model.Member) error {
			created = m
			return nil
		},
	})

	m := model.NewMember("A001", "John Doe", "john@univ.ac.id", "081234567890", model.CategoryStudent)
	require.NoError(t, svc.Register(context.Background(), m))
	require.Equal(t, m, created)
}

func TestRegister_Invalid(t *testing.T) {
	svc := membersvc.New(&repoMock{})

	m := model.NewMember("A001", "John Doe", "bad-email", "081234567890", model.CategoryStudent)
	err := svc.Register(context.Background(), m)
	require.ErrorIs(t, err, membersvc.ErrBadInput)
}

func TestGet_NotFound(t *testing.T) {
	svc := membersvc.New(&repoMock{})

	_, err := svc.Get(context.Background(), "A404")
	require.ErrorIs(t, err, membersvc.ErrNotFound)
}

func TestGet(t *testing.T) {
	want := model.NewMember("A001", "John Doe", "john@univ.ac.id", "081234567890", model.CategoryFaculty)
	svc := membersvc.New(&repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.Member, error) {
			require.Equal(t, "A001", id)
			return want, nil
		},
	})

	got, err := svc.Get(context.Background(), "A001")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSetActive(t *testing.T) {
	var gotID string
	var gotActive bool
	svc := membersvc.New(&repoMock{
		setActiveFn: func(ctx context.Context, id string, active bool) error {
			gotID, gotActive = id, active
			return nil
		},
	})

	require.NoError(t, svc.SetActive(context.Background(), "A001", false))
	require.Equal(t, "A001", gotID)
	require.False(t, gotActive)

	svc = membersvc.New(&repoMock{
		setActiveFn: func(ctx context.Context, id string, active bool) error {
			return errors.New("member not found")
		},
	})
	require.Error(t, svc.SetActive(context.Background(), "A404", true))
}
