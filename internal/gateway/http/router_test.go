package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
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

const (
	testIssuer = "tollgate-auth"
	testSecret = "0123456789abcdef0123456789abcdef"
)

type testEnv struct {
	router *gatewayhttp.Router
	params params.Static
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Rate limit profiles are package-level; widen them so handler tests
	// never trip the token-bucket.
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.ModerateLimit = httpx.StrictLimit
	httpx.LenientLimit = httpx.StrictLimit

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	p := params.Static{params.TokenSecret: testSecret}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := gatewayhttp.NewRouter("test", st, logger)
	router.TokenService = &service.TokenService{Params: p, Issuer: testIssuer}
	router.AuthorizeService = &service.AuthorizeService{Params: p, Issuer: testIssuer}
	router.PaymentService = &service.PaymentService{Store: st}
	router.ApplyRoutes()

	return &testEnv{router: router, params: p}
}

func (e *testEnv) do(t *testing.T, method, path, accessToken string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func newRawRequest(t *testing.T, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/token", bytes.NewReader([]byte(body)))
	return req, httptest.NewRecorder()
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (e *testEnv) issueTokens(t *testing.T, userID string) tollsdk.TokenResponse {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType: "password",
		UserID:    userID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[tollsdk.TokenResponse](t, rec)
}
