package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants for the issue/refresh flows. The access TTL
// can be overridden at runtime via the parameter store; the refresh TTL is
// fixed.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = 1 * time.Hour

	// DefaultRefreshTokenTTL is the lifetime for refresh tokens.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenType distinguishes short-lived access tokens from the long-lived
// refresh tokens used to mint them.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Valid reports whether t is one of the known token types.
func (t TokenType) Valid() bool {
	return t == TokenTypeAccess || t == TokenTypeRefresh
}

// Claims are the token claims shared by both token types. Keeping the
// custom surface to a single "type" claim so the compact encoding stays
// small.
type Claims struct {
	jwt.RegisteredClaims

	// TokenType marks the token as "access" or "refresh". The codec never
	// enforces it; callers decide which type they accept.
	TokenType TokenType `json:"type,omitempty"`
}

// NewClaims builds a claim set for subject with the given type and TTL.
// Timestamps are truncated to whole seconds so a decode round-trips to the
// same values the compact encoding carries.
func NewClaims(
	subject string,
	typ TokenType,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	now = now.UTC().Truncate(time.Second)
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: typ,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateTokenType ensures the claims carry the expected token type.
func (c *Claims) ValidateTokenType(expected TokenType) error {
	if c.TokenType != expected {
		return ErrTokenType
	}
	return nil
}
