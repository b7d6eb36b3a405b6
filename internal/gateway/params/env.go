package params

import (
	"context"
	"os"
	"strings"
)

// Env resolves parameters from environment variables. The parameter name is
// mapped by stripping the leading slash, replacing separators with
// underscores and upper-casing, so "/auth/token/secret" reads
// AUTH_TOKEN_SECRET. An optional Prefix is prepended to the mapped name.
type Env struct {
	Prefix string
}

func (e Env) Get(_ context.Context, name string) (string, error) {
	v, ok := os.LookupEnv(e.Prefix + EnvKey(name))
	if !ok || v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

// EnvKey maps a parameter name to its environment variable form.
func EnvKey(name string) string {
	key := strings.TrimPrefix(name, "/")
	key = strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(key)
	return strings.ToUpper(key)
}
