package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tollgate-io/tollgate/internal/gateway/params"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

func TestTokenEndpointPasswordGrant(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType: "password",
		UserID:    "user-42",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	body := decodeBody[tollsdk.TokenResponse](t, rec)
	require.NotEmpty(t, body.AccessToken)
	require.NotEmpty(t, body.RefreshToken)
	require.Equal(t, "Bearer", body.TokenType)
	require.Equal(t, 3600, body.ExpiresIn)
}

func TestTokenEndpointMissingUserID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType: "password",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[tollsdk.ErrorResponse](t, rec)
	require.Equal(t, tollsdk.ErrorCodeInvalidRequest, body.Error)
}

func TestTokenEndpointUnsupportedGrant(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType: "client_credentials",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenEndpointMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/token", "", map[string]any{
		"grant_type": "password",
		"user":       "typo-field",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenEndpointWrongContentType(t *testing.T) {
	env := newTestEnv(t)

	req, rec := newRawRequest(t, "grant_type=password&user_id=u")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenEndpointRefreshGrant(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.issueTokens(t, "user-42")

	rec := env.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[tollsdk.TokenResponse](t, rec)
	require.NotEmpty(t, body.AccessToken)
	require.Empty(t, body.RefreshToken, "refresh grant must not rotate the refresh token")
}

func TestTokenEndpointRefreshWithAccessToken(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.issueTokens(t, "user-42")

	rec := env.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: tokens.AccessToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody[tollsdk.ErrorResponse](t, rec)
	require.Equal(t, tollsdk.ErrorCodeInvalidGrant, body.Error)
}

func TestTokenEndpointRefreshGarbage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: "not.a.jwt",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenEndpointConfigUnavailable(t *testing.T) {
	env := newTestEnv(t)
	delete(env.params, params.TokenSecret)

	rec := env.do(t, http.MethodPost, "/v1/token", "", tollsdk.TokenRequest{
		GrantType: "password",
		UserID:    "user-42",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody[tollsdk.ErrorResponse](t, rec)
	require.Equal(t, tollsdk.ErrorCodeConfigError, body.Error)
}
