package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Verifier validates JWTs signed using HS256 with a shared secret.
type HS256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

func newHS256Verifier(secret []byte, opts VerifyOptions) *HS256Verifier {
	return &HS256Verifier{secret: secret, opts: opts}
}

// Verify validates the JWT string and returns its parsed Claims.
//
// The signature is always checked before any claim validation, so a
// tampered token reports ErrInvalidSig even when its expiry also lapsed.
// Errors are collapsed into the package sentinel errors so callers can
// switch on error kind with errors.Is.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	timeFunc := v.opts.TimeFunc
	if timeFunc == nil {
		timeFunc = time.Now
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(timeFunc),
		jwt.WithLeeway(v.opts.Leeway),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	// The subject is the principal identity; a token without one is
	// structurally useless.
	if claims.Subject == "" {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// mapParseError collapses golang-jwt's error chain into our sentinel
// errors. Order matters: signature failures outrank expiry, and anything
// unrecognized counts as malformed.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
