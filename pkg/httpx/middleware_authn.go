package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/tollgate-io/tollgate/pkg/jwtx"
	"github.com/tollgate-io/tollgate/pkg/slogx"
)

// AccessVerifier validates a raw bearer credential as an access token.
// Implemented by the authorizer service so the middleware shares its
// fail-closed verification path.
type AccessVerifier interface {
	VerifyAccess(ctx context.Context, token string) (jwtx.Claims, error)
}

// AuthnMiddleware protects a route with bearer access-token
// authentication. On success the subject and claims are injected into the
// request context for downstream handlers.
func AuthnMiddleware(v AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			// Exactly "Bearer <token>": literal scheme, one space, no
			// stray whitespace in the credential position.
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" || strings.ContainsAny(raw[:1], " \t") {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.VerifyAccess(ctx, raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("access token verify failed", "err", err)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyPrincipal, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
