// Package params abstracts runtime parameter lookup. Signing secrets and
// tunables live in a parameter store rather than static config, so services
// fetch them per operation through a Provider and never cache them in fields.
package params

import (
	"context"
	"errors"
)

// Well-known parameter names.
const (
	// TokenSecret is the HS256 signing secret shared by issuance and
	// verification.
	TokenSecret = "/auth/token/secret"

	// TokenTime optionally overrides the access token lifetime in minutes.
	TokenTime = "/auth/token/time"
)

var (
	// ErrNotFound means the parameter does not exist in this provider.
	ErrNotFound = errors.New("params: parameter not found")

	// ErrUnavailable means the provider could not be reached at all. Callers
	// treat this differently from ErrNotFound: a missing parameter may have a
	// default, an unreachable store never does.
	ErrUnavailable = errors.New("params: provider unavailable")
)

// Provider fetches named runtime parameters. Implementations must be safe
// for concurrent use.
type Provider interface {
	Get(ctx context.Context, name string) (string, error)
}

// Static is a fixed in-memory Provider, mainly for tests.
type Static map[string]string

func (s Static) Get(_ context.Context, name string) (string, error) {
	v, ok := s[name]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Multi chains providers: each lookup tries them in order and returns the
// first hit. ErrNotFound falls through to the next provider; ErrUnavailable
// is remembered and wins over ErrNotFound when every provider misses, since
// the parameter may well exist in the store we couldn't reach.
type Multi []Provider

func (m Multi) Get(ctx context.Context, name string) (string, error) {
	var unavailable error
	for _, p := range m {
		v, err := p.Get(ctx, name)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, ErrNotFound):
			continue
		case errors.Is(err, ErrUnavailable):
			unavailable = err
			continue
		default:
			return "", err
		}
	}
	if unavailable != nil {
		return "", unavailable
	}
	return "", ErrNotFound
}
