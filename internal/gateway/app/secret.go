package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/params"
	"github.com/tollgate-io/tollgate/internal/gateway/store"
	"github.com/tollgate-io/tollgate/pkg/cryptox"
)

// ensureSigningSecret makes sure the HS256 signing secret exists before the
// service starts taking traffic. The environment wins when set (so deploys
// can pin a secret); otherwise the encrypted store copy is used, and on
// first boot a fresh secret is generated and persisted.
func ensureSigningSecret(ctx context.Context, st store.Store, logger *slog.Logger) error {
	if _, err := (params.Env{}).Get(ctx, params.TokenSecret); err == nil {
		logger.Info("signing secret sourced from environment",
			slog.String("env_var", params.EnvKey(params.TokenSecret)),
		)
		return nil
	}

	existing, err := st.Parameters().GetParameter(ctx, params.TokenSecret)
	if err == nil {
		// Decrypt once to fail fast on a master key mismatch.
		plain, decErr := cryptox.DecryptValue(existing.Value)
		if decErr != nil {
			return fmt.Errorf("stored signing secret cannot be decrypted (master key changed?): %w", decErr)
		}
		logger.Info("signing secret loaded from parameter store",
			slog.String("fingerprint", cryptox.Fingerprint([]byte(plain))),
		)
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("read signing secret parameter: %w", err)
	}

	secret, err := cryptox.GenerateSecret(cryptox.SecretSize256)
	if err != nil {
		return fmt.Errorf("generate signing secret: %w", err)
	}

	encrypted, err := cryptox.EncryptValue(secret)
	if err != nil {
		return fmt.Errorf("encrypt signing secret: %w", err)
	}

	if err := st.Parameters().PutParameter(ctx, domain.Parameter{
		Name:   params.TokenSecret,
		Value:  encrypted,
		Secure: true,
	}); err != nil {
		return fmt.Errorf("persist signing secret: %w", err)
	}

	logger.Info("generated new signing secret",
		slog.String("fingerprint", cryptox.Fingerprint([]byte(secret))),
	)
	return nil
}
