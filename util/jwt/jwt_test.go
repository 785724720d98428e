package jwt_test

import (
	"testing"

	jwtutil "booklending/util/jwt"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tok, err := jwtutil.Issue("secret", 42, "staff", 1)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := jwtutil.ParseAuth("Bearer "+tok, "secret")
	require.NoError(t, err)
	require.Equal(t, float64(42), claims["sub"])
	require.Equal(t, "staff", claims["role"])
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := jwtutil.Issue("secret", 42, "staff", 1)
	require.NoError(t, err)

	_, err = jwtutil.ParseAuth("Bearer "+tok, "other-secret")
	require.Error(t, err)
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := jwtutil.ParseAuth("", "secret")
	require.Error(t, err)

	_, err = jwtutil.ParseAuth("Bearer ", "secret")
	require.Error(t, err)
}
