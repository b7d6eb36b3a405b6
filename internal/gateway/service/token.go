package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/params"
	"github.com/tollgate-io/tollgate/pkg/jwtx"
	"github.com/tollgate-io/tollgate/pkg/slogx"
)

var (
	ErrMissingSubject    = errors.New("missing_subject")
	ErrInvalidRefresh    = errors.New("invalid_refresh_token")
	ErrWrongTokenType    = errors.New("wrong_token_type")
	ErrConfigUnavailable = errors.New("config_unavailable")
)

// TokenService issues HS256 token pairs and renews access tokens. The
// signing secret is fetched from the parameter provider on every operation,
// never cached in a field, so a rotated secret takes effect immediately.
type TokenService struct {
	Params     params.Provider
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IssuePair mints a fresh access/refresh pair for the subject. The two
// tokens share the same issue instant and differ only in type and expiry.
func (s *TokenService) IssuePair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingSubject
	}

	signer, err := s.signer(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	accessTTL := s.accessTTL(ctx)

	access, err := signer.Sign(jwtx.NewClaims(userID, jwtx.TokenTypeAccess, accessTTL, s.Issuer, now))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := signer.Sign(jwtx.NewClaims(userID, jwtx.TokenTypeRefresh, s.refreshTTL(), s.Issuer, now))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	l.Info("issued token pair",
		slog.String("sub", userID),
		slog.Duration("access_ttl", accessTTL),
	)

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    accessTTL,
	}, nil
}

// RefreshAccess verifies a refresh token and mints a new access token for
// its subject. The refresh token is not rotated and stays usable until its
// own expiry; the response carries no refresh token at all.
func (s *TokenService) RefreshAccess(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidRefresh
	}

	secret, err := s.secret(ctx)
	if err != nil {
		return nil, err
	}

	verifier := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{
		Issuer:   s.Issuer,
		TimeFunc: s.now,
	})

	claims, err := verifier.Verify(refreshToken)
	if err != nil {
		l.Info("refresh token rejected", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRefresh, err)
	}

	if err := claims.ValidateTokenType(jwtx.TokenTypeRefresh); err != nil {
		l.Info("refresh attempted with non-refresh token", slog.String("sub", claims.Subject))
		return nil, fmt.Errorf("%w: %w", ErrWrongTokenType, err)
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	accessTTL := s.accessTTL(ctx)
	access, err := signer.Sign(jwtx.NewClaims(claims.Subject, jwtx.TokenTypeAccess, accessTTL, s.Issuer, s.now()))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	l.Info("refreshed access token", slog.String("sub", claims.Subject))

	return &domain.TokenPair{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   accessTTL,
	}, nil
}

// CheckSigner reports whether the signing secret is currently reachable.
// Used by the readiness probe.
func (s *TokenService) CheckSigner(ctx context.Context) error {
	_, err := s.signer(ctx)
	return err
}

func (s *TokenService) signer(ctx context.Context) (jwtx.Signer, error) {
	secret, err := s.secret(ctx)
	if err != nil {
		return nil, err
	}
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	return signer, nil
}

func (s *TokenService) secret(ctx context.Context) ([]byte, error) {
	v, err := s.Params.Get(ctx, params.TokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	if v == "" {
		return nil, fmt.Errorf("%w: empty signing secret", ErrConfigUnavailable)
	}
	return []byte(v), nil
}

// accessTTL resolves the access token lifetime. The /auth/token/time
// parameter, when present, overrides the configured TTL with a value in
// minutes; a missing or malformed parameter falls back silently.
func (s *TokenService) accessTTL(ctx context.Context) time.Duration {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	v, err := s.Params.Get(ctx, params.TokenTime)
	if err != nil {
		return ttl
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || minutes <= 0 {
		return ttl
	}
	return time.Duration(minutes) * time.Minute
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL > 0 {
		return s.RefreshTTL
	}
	return jwtx.DefaultRefreshTokenTTL
}
