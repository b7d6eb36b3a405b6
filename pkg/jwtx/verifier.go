package jwtx

import (
	"errors"
	"time"
)

// Verifier validates a compact JWT and gives you back the claims if it's
// legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Leeway allows small clock skew when validating exp/iat.
	Leeway time.Duration

	// TimeFunc supplies the current time for expiry checks. Nil means
	// time.Now. Inject a fixed clock in tests.
	TimeFunc func() time.Time
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrIssuer     = errors.New("jwtx: issuer mismatch")
	ErrTokenType  = errors.New("jwtx: unexpected token type")
)

// NewVerifierHS256 returns a Verifier that checks HS256 signatures against
// the given shared secret. Like the signer, it borrows the secret for the
// lifetime of one verifier; construct a fresh one per operation when the
// secret comes from an external provider.
func NewVerifierHS256(secret []byte, opts VerifyOptions) Verifier {
	return newHS256Verifier(secret, opts)
}
