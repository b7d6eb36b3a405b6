package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/params"
	"github.com/tollgate-io/tollgate/pkg/jwtx"
	"github.com/tollgate-io/tollgate/pkg/slogx"
)

// AuthorizeService turns bearer credentials into Allow/Deny policy
// decisions. It is strictly fail-closed: any failure along the way, from an
// unreachable parameter store to a stale signature, produces a Deny with the
// placeholder principal rather than an error response.
type AuthorizeService struct {
	Params params.Provider
	Issuer string
	Leeway time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *AuthorizeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Authorize evaluates the raw Authorization header value against the method
// ARN. It never returns an error; every failure mode collapses into Deny.
func (s *AuthorizeService) Authorize(ctx context.Context, authorizationToken, methodARN string) domain.Decision {
	l := slogx.FromContext(ctx)

	raw, ok := stripBearer(authorizationToken)
	if !ok {
		l.Info("authorize: missing or malformed bearer scheme")
		return domain.Deny(methodARN)
	}

	claims, err := s.VerifyAccess(ctx, raw)
	if err != nil {
		l.Info("authorize: denied", slog.String("reason", err.Error()))
		return domain.Deny(methodARN)
	}

	l.Info("authorize: allowed", slog.String("sub", claims.Subject))
	return domain.Allow(claims.Subject, methodARN)
}

// VerifyAccess validates a raw token as a live access token and returns its
// claims. Shared by the authorizer and the bearer-auth middleware so both
// paths verify identically.
func (s *AuthorizeService) VerifyAccess(ctx context.Context, token string) (jwtx.Claims, error) {
	secret, err := s.Params.Get(ctx, params.TokenSecret)
	if err != nil || secret == "" {
		return jwtx.Claims{}, fmt.Errorf("%w: signing secret: %v", ErrConfigUnavailable, err)
	}

	verifier := jwtx.NewVerifierHS256([]byte(secret), jwtx.VerifyOptions{
		Issuer:   s.Issuer,
		Leeway:   s.Leeway,
		TimeFunc: s.now,
	})

	claims, err := verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, err
	}

	if err := claims.ValidateTokenType(jwtx.TokenTypeAccess); err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrWrongTokenType, err)
	}

	return claims, nil
}

// stripBearer extracts the raw token from an Authorization header value.
// The header must be exactly "Bearer <token>": literal case-sensitive
// scheme, a single separating space, non-empty credential. Anything looser
// would widen what the gateway allows through.
func stripBearer(header string) (string, bool) {
	const prefix = "Bearer "
	token, ok := strings.CutPrefix(header, prefix)
	if !ok || token == "" || strings.ContainsAny(token[:1], " \t") {
		return "", false
	}
	return token, true
}
