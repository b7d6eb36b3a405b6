package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/tollgate-io/tollgate/pkg/jwtx"
)

func TestNewClaims(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 500_000_000, time.UTC)

	c := jwtx.NewClaims("user-123", jwtx.TokenTypeAccess, time.Hour, "tollgate-auth", now)

	require.Equal(t, "user-123", c.Subject)
	require.Equal(t, "tollgate-auth", c.Issuer)
	require.Equal(t, jwtx.TokenTypeAccess, c.TokenType)

	// Sub-second precision must be truncated so encode/decode round-trips.
	require.Equal(t, now.Truncate(time.Second), c.IssuedAt.Time)
	require.Equal(t, time.Hour, c.ExpiresAt.Sub(c.IssuedAt.Time))
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "tollgate-auth",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("tollgate-auth"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("payments-service")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateTokenType(t *testing.T) {
	c := &jwtx.Claims{TokenType: jwtx.TokenTypeRefresh}

	t.Run("matching type", func(t *testing.T) {
		require.NoError(t, c.ValidateTokenType(jwtx.TokenTypeRefresh))
	})

	t.Run("mismatched type", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateTokenType(jwtx.TokenTypeAccess), jwtx.ErrTokenType)
	})
}

func TestTokenTypeValid(t *testing.T) {
	require.True(t, jwtx.TokenTypeAccess.Valid())
	require.True(t, jwtx.TokenTypeRefresh.Valid())
	require.False(t, jwtx.TokenType("session").Valid())
	require.False(t, jwtx.TokenType("").Valid())
}
