package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tollgate-io/tollgate/internal/gateway/params"
)

func TestE2EAuthorizeAllowFlow(t *testing.T) {
	client, _ := setupGateway(t)
	ctx := context.Background()

	tokens, err := client.PasswordGrant(ctx, "user-e2e")
	require.NoError(t, err)

	verdict, err := client.Authorize(ctx, "Bearer "+tokens.AccessToken, e2eMethodARN)
	require.NoError(t, err)
	require.Equal(t, "user-e2e", verdict.PrincipalID)
	require.Equal(t, "2012-10-17", verdict.PolicyDocument.Version)
	require.Len(t, verdict.PolicyDocument.Statement, 1)
	require.Equal(t, "Allow", verdict.PolicyDocument.Statement[0].Effect)
	require.Equal(t, e2eMethodARN, verdict.PolicyDocument.Statement[0].Resource)
}

func TestE2EAuthorizeDenyFlow(t *testing.T) {
	client, _ := setupGateway(t)
	ctx := context.Background()

	tokens, err := client.PasswordGrant(ctx, "user-e2e")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"no scheme", tokens.AccessToken},
		{"garbage", "Bearer not.a.jwt"},
		{"refresh token", "Bearer " + tokens.RefreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := client.Authorize(ctx, tt.token, e2eMethodARN)
			require.NoError(t, err, "authorizer never errors, it denies")
			require.Equal(t, "user", verdict.PrincipalID)
			require.Equal(t, "Deny", verdict.PolicyDocument.Statement[0].Effect)
		})
	}
}

func TestE2EAuthorizeFailClosedOnOutage(t *testing.T) {
	client, p := setupGateway(t)
	ctx := context.Background()

	tokens, err := client.PasswordGrant(ctx, "user-e2e")
	require.NoError(t, err)

	delete(p, params.TokenSecret)

	verdict, err := client.Authorize(ctx, "Bearer "+tokens.AccessToken, e2eMethodARN)
	require.NoError(t, err)
	require.Equal(t, "Deny", verdict.PolicyDocument.Statement[0].Effect)
	require.Equal(t, "user", verdict.PrincipalID)
}
