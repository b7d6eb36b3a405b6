package gateway_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestE2EHealthEndpoints(t *testing.T) {
	client, _ := setupGateway(t)
	ctx := context.Background()

	live, err := client.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Uptime)

	ready, err := client.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)
}

func TestE2EUtilityEndpoints(t *testing.T) {
	client, _ := setupGateway(t)
	ctx := context.Background()

	hello, err := client.Hello(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, hello.Message)
	require.NotEmpty(t, hello.Timestamp)

	stats, err := client.Stats(ctx, []float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	require.Equal(t, 8, stats.Count)
	require.InDelta(t, 5.0, stats.Mean, 1e-9)
	require.InDelta(t, math.Sqrt(32.0/7.0), stats.Std, 1e-9)
}
