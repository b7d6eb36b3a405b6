package gateway_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gatewayhttp "github.com/tollgate-io/tollgate/internal/gateway/http"
	"github.com/tollgate-io/tollgate/internal/gateway/params"
	"github.com/tollgate-io/tollgate/internal/gateway/service"
	"github.com/tollgate-io/tollgate/internal/gateway/store/drivers/sqlite"
	"github.com/tollgate-io/tollgate/pkg/httpx"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

/*
 * Common helpers for tollgate end-to-end tests. The full service (router,
 * services, sqlite store, parameter provider) runs in-process behind an
 * httptest server, and every test drives it through the tollsdk client
 * exactly the way an external consumer would.
 */

const (
	e2eIssuer = "tollgate-auth"
	e2eSecret = "e2e-test-secret-0123456789abcdef"

	e2eMethodARN = "arn:aws:execute-api:us-east-1:123456789012:api-id/prod/GET/payments"
)

// setupGateway starts the full service in-process and returns an SDK client
// pointed at it, plus the parameter map for tests that need to break the
// configuration mid-flight.
func setupGateway(t *testing.T) (*tollsdk.SDKClient, params.Static) {
	t.Helper()

	// Widen the rate limit profiles; throttling behaviour has its own test.
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 100000, Window: time.Minute, Burst: 100000}
	httpx.ModerateLimit = httpx.StrictLimit
	httpx.LenientLimit = httpx.StrictLimit

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	p := params.Static{params.TokenSecret: e2eSecret}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := gatewayhttp.NewRouter("e2e", st, logger)
	router.TokenService = &service.TokenService{Params: p, Issuer: e2eIssuer}
	router.AuthorizeService = &service.AuthorizeService{Params: p, Issuer: e2eIssuer}
	router.PaymentService = &service.PaymentService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return tollsdk.NewSDKClient(server.URL), p
}
