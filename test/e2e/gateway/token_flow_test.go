package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tollgate-io/tollgate/internal/gateway/params"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

func TestE2ETokenIssuanceAndRefresh(t *testing.T) {
	client, _ := setupGateway(t)
	ctx := context.Background()

	tokens, err := client.PasswordGrant(ctx, "user-e2e")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	require.Equal(t, "Bearer", tokens.TokenType)
	require.Equal(t, 3600, tokens.ExpiresIn)

	renewed, err := client.RefreshGrant(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, renewed.AccessToken)
	require.Empty(t, renewed.RefreshToken)

	// The same refresh token keeps working; it is never rotated.
	again, err := client.RefreshGrant(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, again.AccessToken)
}

func TestE2ETokenErrors(t *testing.T) {
	client, _ := setupGateway(t)
	ctx := context.Background()

	_, err := client.PasswordGrant(ctx, "")
	var apiErr *tollsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)

	_, err = client.RefreshGrant(ctx, "bogus-token")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
	require.Equal(t, tollsdk.ErrorCodeInvalidGrant, apiErr.Code)

	// An access token presented as a refresh token is rejected too.
	tokens, err := client.PasswordGrant(ctx, "user-e2e")
	require.NoError(t, err)

	_, err = client.RefreshGrant(ctx, tokens.AccessToken)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
}

func TestE2ETokenConfigOutage(t *testing.T) {
	client, p := setupGateway(t)
	ctx := context.Background()

	delete(p, params.TokenSecret)

	var apiErr *tollsdk.APIError
	_, err := client.PasswordGrant(ctx, "user-e2e")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 500, apiErr.StatusCode)
	require.Equal(t, tollsdk.ErrorCodeConfigError, apiErr.Code)
}
