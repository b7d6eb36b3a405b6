package params

import (
	"context"
	"errors"
	"fmt"

	"github.com/tollgate-io/tollgate/internal/gateway/store"
	"github.com/tollgate-io/tollgate/pkg/cryptox"
)

// StoreProvider resolves parameters from the persistent parameter table.
// Secure parameters are decrypted with the service master key on the way
// out, so callers always see plaintext.
type StoreProvider struct {
	Repo store.Parameters
}

func (s StoreProvider) Get(ctx context.Context, name string) (string, error) {
	p, err := s.Repo.GetParameter(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !p.Secure {
		return p.Value, nil
	}

	plain, err := cryptox.DecryptValue(p.Value)
	if err != nil {
		return "", fmt.Errorf("%w: decrypt %s: %v", ErrUnavailable, name, err)
	}
	return plain, nil
}
